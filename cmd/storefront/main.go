package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bookstore/internal/bookclient"
	"bookstore/internal/cart"
	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/localstore"

	"github.com/joho/godotenv"
)

const (
	publicPageSize = 8
	adminPageSize  = 5
)

func main() {
	_ = godotenv.Load(".env.local")

	var (
		apiURL  = flag.String("api", getEnv("API_URL", "http://localhost:8080"), "Book API base URL")
		dataDir = flag.String("data", "", "Local storage directory (defaults to the user config dir)")
		admin   = flag.Bool("admin", false, "Use the admin console page size")
		query   = flag.String("query", "", "Filter state as a query string, e.g. 'price2=true&search=king&page=1'")
	)
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		var err error
		if dir, err = localstore.DefaultDir(); err != nil {
			log.Fatalf("cannot determine storage dir: %v", err)
		}
	}
	kv, err := localstore.Open(dir)
	if err != nil {
		log.Fatalf("cannot open local storage: %v", err)
	}
	cartStore := cart.NewStore(kv)
	if err := cartStore.Init(); err != nil {
		log.Fatalf("cannot initialize cart: %v", err)
	}
	prefs := localstore.NewPrefs(kv)

	client := bookclient.New(*apiURL)

	args := flag.Args()
	command := "list"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "list":
		runList(client, cartStore, *query, pageSize(*admin))
	case "cart":
		runCart(client, cartStore, args[1:])
	case "like":
		runLike(prefs, args[1:])
	case "theme":
		runTheme(prefs, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: storefront [flags] [list | cart add|remove|show|clear [id] | like <id> | theme [dark|light|toggle]]\n", command)
		os.Exit(2)
	}
}

func pageSize(admin bool) int {
	if admin {
		return adminPageSize
	}
	return publicPageSize
}

// loadSnapshot fetches the catalog in the background and waits on the
// snapshot's readiness signal rather than polling for data.
func loadSnapshot(client *bookclient.Client) (*catalog.Snapshot, error) {
	snapshot := catalog.NewSnapshot()

	fetchErr := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		books, err := client.GetBooks(ctx)
		if err != nil {
			fetchErr <- err
			return
		}
		snapshot.Populate(books)
	}()

	select {
	case <-snapshot.Ready():
		return snapshot, nil
	case err := <-fetchErr:
		return nil, err
	}
}

func runList(client *bookclient.Client, cartStore *cart.Store, rawQuery string, size int) {
	snapshot, err := loadSnapshot(client)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	controller := catalog.NewController(snapshot, size, catalog.Callbacks{
		RenderBooks:      printBooks,
		RenderPagination: printPagination,
		ResetFilters:     func() {},
	})
	if err := controller.SetRawQuery(rawQuery); err != nil {
		log.Fatalf("bad -query: %v", err)
	}
	controller.Apply()

	fmt.Printf("\nfilter state: ?%s\n", controller.Query())

	if items, err := cartStore.Items(); err == nil {
		fmt.Printf("cart: %d items, subtotal %.0f₮\n", cart.Count(items), cart.Subtotal(items))
	}
}

func printBooks(books []entity.Book) {
	if len(books) == 0 {
		fmt.Println("no books on this page")
		return
	}
	for _, b := range books {
		stock := "in stock"
		if !b.InStock {
			stock = "out of stock"
		}
		fmt.Printf("%4d  %-40s %-20s %8.0f₮  %.1f★ (%d)  %s\n",
			b.ID, truncate(b.Title, 40), truncate(b.Author, 20), b.Price, b.Rating, b.Reviews, stock)
	}
}

func printPagination(currentPage, totalPages int, buttons []catalog.Button) {
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		switch btn.Kind {
		case catalog.ButtonPrev:
			if btn.Disabled {
				parts = append(parts, " < ")
			} else {
				parts = append(parts, "<")
			}
		case catalog.ButtonNext:
			if btn.Disabled {
				parts = append(parts, " > ")
			} else {
				parts = append(parts, ">")
			}
		case catalog.ButtonEllipsis:
			parts = append(parts, "...")
		case catalog.ButtonNumber:
			if btn.Active {
				parts = append(parts, fmt.Sprintf("[%d]", btn.Page))
			} else {
				parts = append(parts, strconv.Itoa(btn.Page))
			}
		}
	}
	fmt.Printf("\npage %d of %d:  %s\n", currentPage, totalPages, strings.Join(parts, " "))
}

func runCart(client *bookclient.Client, cartStore *cart.Store, args []string) {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		items, err := cartStore.Items()
		if err != nil {
			log.Fatalf("cannot read cart: %v", err)
		}
		printCart(items)
	case "clear":
		if err := cartStore.Clear(); err != nil {
			log.Fatalf("cannot clear cart: %v", err)
		}
		fmt.Println("cart cleared")
	case "add", "remove":
		if len(args) < 2 {
			log.Fatalf("usage: storefront cart %s <book id>", args[0])
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			log.Fatalf("bad book id %q", args[1])
		}
		delta := 1
		if args[0] == "remove" {
			delta = -1
		}

		snapshot, err := loadSnapshot(client)
		if err != nil {
			log.Fatalf("cannot load catalog: %v", err)
		}
		items, err := cartStore.UpdateQuantity(id, delta, snapshot)
		if err != nil {
			log.Fatalf("cannot update cart: %v", err)
		}
		printCart(items)
	default:
		log.Fatalf("unknown cart command %q (want add, remove, show or clear)", args[0])
	}
}

func printCart(items []cart.LineItem) {
	if len(items) == 0 {
		fmt.Println("your cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("%4d  %-40s x%-3d %8.0f₮\n", item.ID, truncate(item.Title, 40), item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Printf("      subtotal: %.0f₮ (%d items)\n", cart.Subtotal(items), cart.Count(items))
}

func runLike(prefs *localstore.Prefs, args []string) {
	if len(args) < 1 {
		log.Fatal("usage: storefront like <book id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		log.Fatalf("bad book id %q", args[0])
	}
	liked, err := prefs.ToggleLike(id)
	if err != nil {
		log.Fatalf("cannot save like: %v", err)
	}
	if liked {
		fmt.Printf("book %d liked\n", id)
	} else {
		fmt.Printf("book %d unliked\n", id)
	}
}

func runTheme(prefs *localstore.Prefs, args []string) {
	mode := "toggle"
	if len(args) > 0 {
		mode = args[0]
	}

	switch mode {
	case "dark", "light":
		if err := prefs.SetTheme(mode); err != nil {
			log.Fatalf("cannot save theme: %v", err)
		}
	case "toggle":
		next := "dark"
		if prefs.Theme() == "dark" {
			next = "light"
		}
		if err := prefs.SetTheme(next); err != nil {
			log.Fatalf("cannot save theme: %v", err)
		}
	default:
		log.Fatalf("unknown theme %q (want dark, light or toggle)", mode)
	}
	fmt.Printf("theme: %s\n", prefs.Theme())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
