package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/booking"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/client"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/config"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/geo"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/notify"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// terminal implements the Confirmer and Navigator the booking components
// expect, on stdin/stdout.
type terminal struct {
	in *bufio.Reader
}

func newTerminal() *terminal {
	return &terminal{in: bufio.NewReader(os.Stdin)}
}

func (t *terminal) Confirm(title, message string) bool {
	fmt.Printf("\n%s\n%s [y/N]: ", title, message)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (t *terminal) NavigateTo(page string) {
	fmt.Printf("→ %s\n", page)
}

func (t *terminal) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: servicehub <command> [flags]

Commands:
  login                        sign in and persist the session
  logout                       clear the persisted session
  bookings [-status S] [-search Q] [-page N]
                               list your bookings
  book -work ID [-worker ID] [-auto] [flags]
                               create a booking
  cancel -id ID                cancel a booking
  assignment -id ID [-accept | -reject [-reason R]]
                               review an auto-assigned worker
  wallet                       show wallet balances
  watch                        follow live booking status updates`)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	config.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	store, err := session.Open(config.AppConfig.Session.DBPath)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}

	api := client.New(config.AppConfig.API.BaseURL, store)
	term := newTerminal()
	notifier := notify.Log{}
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, api, term)
	case "logout":
		if err := api.SignOut(); err != nil {
			log.Fatal(err)
		}
		notifier.Success("Logged out")
	case "bookings":
		runBookings(ctx, api, store, term, notifier, os.Args[2:])
	case "book":
		runBook(ctx, api, notifier, os.Args[2:])
	case "cancel":
		runCancel(ctx, api, store, term, notifier, os.Args[2:])
	case "assignment":
		runAssignment(ctx, api, store, term, notifier, os.Args[2:])
	case "wallet":
		runWallet(ctx, api)
	case "watch":
		runWatch(ctx, store)
	default:
		usage()
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, api *client.Client, term *terminal) {
	email := term.prompt("Email")
	password := term.prompt("Password")

	result, err := api.SignIn(ctx, email, password)
	if err != nil {
		log.Fatal("Login failed: ", err)
	}
	welcome := result.WelcomeMessage
	if welcome == "" {
		welcome = fmt.Sprintf("Welcome back, %s!", result.UserName)
	}
	fmt.Println(welcome)
}

func runBookings(ctx context.Context, api *client.Client, store session.Context, term *terminal, notifier notify.Notifier, args []string) {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	status := fs.String("status", "", "filter by status (e.g. PENDING, CONFIRMED)")
	search := fs.String("search", "", "search by service, worker or description")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	view := booking.NewListView(api, store, notifier, term, term)
	if err := view.Load(ctx); err != nil {
		os.Exit(1)
	}
	view.SetStatusFilter(models.BookingStatus(strings.ToUpper(*status)))
	view.SetSearch(*search)
	view.ChangePage(*page)

	bookings := view.Page()
	if len(bookings) == 0 {
		fmt.Println("No bookings found.")
		return
	}
	for _, b := range bookings {
		fmt.Printf("#%d  %-30s %-12s ₹%.2f  %s\n",
			b.ID, b.WorkTitle, b.Status.Label(), b.TotalAmount, b.ScheduledDate.Format("Mon, 02 Jan 2006 15:04"))
		actions := view.ActionsFor(b)
		if len(actions) > 0 {
			labels := make([]string, len(actions))
			for i, a := range actions {
				labels[i] = string(a)
			}
			fmt.Printf("     actions: %s\n", strings.Join(labels, ", "))
		}
	}
	fmt.Printf("Page %d of %d\n", view.CurrentPage(), view.TotalPages())
}

func runBook(ctx context.Context, api *client.Client, notifier notify.Notifier, args []string) {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	workID := fs.Uint("work", 0, "service id (required)")
	workerID := fs.Uint("worker", 0, "worker id (direct booking)")
	auto := fs.Bool("auto", false, "let the backend assign a worker")
	description := fs.String("description", "", "what you need help with")
	date := fs.String("date", "", "service date (YYYY-MM-DD)")
	timeOfDay := fs.String("time", "", "service time (HH:MM, 08:00-20:00)")
	address := fs.String("address", "", "service address")
	phone := fs.String("phone", "", "contact phone")
	instructions := fs.String("instructions", "", "special instructions")
	emergency := fs.Bool("emergency", false, "urgent request (50% surcharge)")
	agree := fs.Bool("agree-terms", false, "accept the terms and conditions")
	useLocation := fs.Bool("use-location", false, "fill the address from the device location")
	lat := fs.Float64("lat", 0, "device latitude (with -use-location)")
	lon := fs.Float64("lon", 0, "device longitude (with -use-location)")
	fs.Parse(args)

	if *workID == 0 {
		log.Fatal("-work is required")
	}
	mode := booking.ModeDirect
	if *auto {
		mode = booking.ModeAuto
	} else if *workerID == 0 {
		log.Fatal("-worker is required for a direct booking (or pass -auto)")
	}

	work, err := api.GetWork(ctx, *workID)
	if err != nil {
		log.Fatal("Failed to load service details: ", err)
	}

	composer := booking.NewComposer(api, mode, notifier)
	form := &booking.Form{
		Description:         *description,
		ServiceDate:         *date,
		ServiceTime:         *timeOfDay,
		Address:             *address,
		Phone:               *phone,
		SpecialInstructions: *instructions,
		IsEmergency:         *emergency,
		AgreeTerms:          *agree,
	}

	if *useLocation {
		var source geo.PositionSource
		if *lat != 0 || *lon != 0 {
			source = geo.StaticSource{Latitude: *lat, Longitude: *lon}
		}
		resolver := geo.NewResolver(source, geo.NewGeocoder(),
			config.AppConfig.Geo.Timeout, config.AppConfig.Geo.MaximumAge)
		composer.UseLocation(resolver)
		if form.Address == "" {
			// Best effort: on failure the user keeps typing the address.
			composer.FillAddressFromLocation(ctx, form)
		}
	}

	receipt, fieldErrs, err := composer.Submit(ctx, work, *workerID, form)
	if len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
		}
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Booking #%d created. Estimated total: ₹%.2f\n", receipt.Booking.ID, receipt.Estimate)
	fmt.Println(receipt.Guidance)
}

func runCancel(ctx context.Context, api *client.Client, store session.Context, term *terminal, notifier notify.Notifier, args []string) {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.Uint("id", 0, "booking id (required)")
	fs.Parse(args)
	if *id == 0 {
		log.Fatal("-id is required")
	}

	view := booking.NewListView(api, store, notifier, term, term)
	if err := view.Load(ctx); err != nil {
		os.Exit(1)
	}
	if err := view.Cancel(ctx, *id); err != nil {
		os.Exit(1)
	}
}

func runAssignment(ctx context.Context, api *client.Client, store session.Context, term *terminal, notifier notify.Notifier, args []string) {
	fs := flag.NewFlagSet("assignment", flag.ExitOnError)
	id := fs.Uint("id", 0, "booking id (required)")
	accept := fs.Bool("accept", false, "accept the assigned worker")
	reject := fs.Bool("reject", false, "reject the assigned worker")
	reason := fs.String("reason", "", "rejection reason")
	fs.Parse(args)
	if *id == 0 {
		log.Fatal("-id is required")
	}

	reviewer := booking.NewAssignmentReviewer(api, store, notifier, term, term)
	if err := reviewer.Load(ctx, uint(*id)); err != nil {
		os.Exit(1)
	}

	b := reviewer.Booking()
	fmt.Printf("Booking #%d  %s  [%s]\n", b.ID, b.WorkTitle, b.Status.Label())
	if w := reviewer.Worker(); w != nil {
		fmt.Printf("Assigned worker: %s, %.1f★ (%d reviews), %d years experience, %s\n",
			w.Name, w.Rating, w.TotalRatings, w.ExperienceYears, w.City)
	}

	if !reviewer.CanReview() {
		fmt.Println("This booking is not awaiting assignment review.")
		return
	}

	switch {
	case *accept:
		if err := reviewer.Accept(ctx); err != nil {
			os.Exit(1)
		}
	case *reject:
		if err := reviewer.Reject(ctx, *reason); err != nil {
			os.Exit(1)
		}
	default:
		fmt.Println("Pass -accept or -reject to decide.")
	}
}

func runWallet(ctx context.Context, api *client.Client) {
	wallet, err := api.GetWallet(ctx)
	if err != nil {
		log.Fatal("Failed to load wallet: ", err)
	}
	fmt.Printf("Available: ₹%.2f\nIn escrow: ₹%.2f\nTotal:     ₹%.2f\n",
		wallet.Balance, wallet.EscrowBalance, wallet.Total())
}

func runWatch(ctx context.Context, store session.Context) {
	wsURL := config.AppConfig.API.WSURL
	if wsURL == "" {
		log.Fatal("API_WS_URL is not configured")
	}
	sess, err := store.Get()
	if err != nil || sess == nil {
		log.Fatal("Please login first")
	}

	watcher := notify.NewWatcher(wsURL, sess.AuthToken)
	go func() {
		for update := range watcher.Updates() {
			fmt.Printf("booking #%d is now %s\n", update.BookingID, update.Status.Label())
		}
	}()

	log.Printf("watching booking status updates on %s", wsURL)
	if err := watcher.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
