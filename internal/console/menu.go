package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fjod/go_pos/internal/account"
	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/payment"
	"github.com/fjod/go_pos/internal/pricing"
	"github.com/fjod/go_pos/internal/receipt"
)

// Console drives the interactive register loop over plain reader/writer
// pairs so the whole flow is scriptable in tests.
type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	accounts   *account.Store
	store      catalog.Store
	ledger     *cart.Ledger
	rates      pricing.Rates
	service    *checkout.Service
	receiptDir string
	now        func() time.Time

	currentUser string
}

func New(in io.Reader, out io.Writer, accounts *account.Store, store catalog.Store,
	ledger *cart.Ledger, rates pricing.Rates, service *checkout.Service, receiptDir string) *Console {
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		accounts:   accounts,
		store:      store,
		ledger:     ledger,
		rates:      rates,
		service:    service,
		receiptDir: receiptDir,
		now:        time.Now,
	}
}

// Run blocks until the user exits or input runs dry.
func (c *Console) Run(ctx context.Context) {
	for {
		c.printf("\n===== WELCOME =====\n1. Register\n2. Login\n3. Exit\nChoice: ")
		choice, ok := c.readInt(1, 3)
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.register()
		case 2:
			if c.login() {
				c.mainMenu(ctx)
			}
		case 3:
			c.printf("Exiting. Goodbye!\n")
			return
		}
	}
}

func (c *Console) register() {
	c.printf("Username: ")
	username, ok := c.readLine()
	if !ok {
		return
	}
	c.printf("Password: ")
	password, ok := c.readLine()
	if !ok {
		return
	}

	if err := c.accounts.Register(username, password); err != nil {
		c.printf("Registration failed: %v\n", err)
		return
	}
	c.printf("Registration successful!\n")
}

func (c *Console) login() bool {
	c.printf("Username: ")
	username, ok := c.readLine()
	if !ok {
		return false
	}
	c.printf("Password: ")
	password, ok := c.readLine()
	if !ok {
		return false
	}

	user, err := c.accounts.Authenticate(username, password)
	if err != nil {
		c.printf("Invalid credentials!\n")
		return false
	}
	c.currentUser = user
	c.printf("Login successful! Welcome, %s!\n", user)
	return true
}

func (c *Console) mainMenu(ctx context.Context) {
	for {
		c.printf("\n===== MAIN MENU =====\n1. Browse Products\n2. View Cart\n3. Add to Cart\n4. Remove from Cart\n5. Checkout\n6. Exit\nChoice: ")
		choice, ok := c.readInt(1, 6)
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.browse()
		case 2:
			c.viewCart()
		case 3:
			c.addToCart()
		case 4:
			c.removeFromCart()
		case 5:
			c.checkout(ctx)
		case 6:
			c.printf("Thank you for shopping!\n")
			c.currentUser = ""
			return
		}
	}
}

func (c *Console) browse() {
	categories := catalog.Categories()
	c.printf("Select Category:\n")
	for i, category := range categories {
		c.printf("%d. %s\n", i+1, category)
	}
	choice, ok := c.readInt(1, len(categories))
	if !ok {
		return
	}
	category := categories[choice-1]

	c.printf("\nAvailable Products")
	if category != catalog.CategoryAll {
		c.printf(" in %s", category)
	}
	c.printf(":\n")

	c.printf("%-20s%-15s%-10s%-10s%-15s%s\n", "Name", "Category", "Price", "Qty", "Barcode", "Offer")
	c.printf("%s\n", strings.Repeat("-", 80))
	for item := range c.store.ListByCategory(category) {
		offer := ""
		if item.BOGO {
			offer = "BOGO Offer!"
		}
		if note := item.Variant.Note(); note != "" {
			offer += " " + note
		}
		c.printf("%-20s%-15s₹%-10s%-10d%-15s%s\n",
			item.Name, item.Category, item.Price.StringFixed(2), item.Stock, item.Barcode, strings.TrimSpace(offer))
	}
}

func (c *Console) viewCart() {
	lines := c.ledger.Lines()
	if len(lines) == 0 {
		c.printf("\nYour cart is empty.\n")
		return
	}

	c.printf("\nYour Shopping Cart:\n")
	c.printf("%-20s%-10s%-12s%-12s%s\n", "Item", "Qty", "Unit Price", "Total", "Notes")
	c.printf("%s\n", strings.Repeat("-", 60))
	for _, line := range lines {
		notes := ""
		if line.BOGO {
			notes = "(BOGO)"
		}
		c.printf("%-20s%-10d₹%-11s₹%-11s%s\n",
			line.Name, line.Qty, line.UnitPrice.StringFixed(2), pricing.LineTotal(line).StringFixed(2), notes)
	}
	c.printf("%s\n", strings.Repeat("-", 60))

	totals := c.rates.ComputeTotals(lines)
	c.printf("%50s%s\n", "Subtotal: ₹", totals.Subtotal.StringFixed(2))
}

func (c *Console) addToCart() {
	c.printf("Product name: ")
	name, ok := c.readLine()
	if !ok {
		return
	}
	c.printf("Quantity: ")
	qty, ok := c.readInt(1, 99)
	if !ok {
		return
	}

	line, err := c.ledger.AddItem(name, qty)
	if err != nil {
		var stockErr *catalog.InsufficientStockError
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.printf("Product not found!\n")
		case errors.As(err, &stockErr):
			c.printf("Not enough stock (Available: %d)\n", stockErr.Available)
		default:
			c.printf("Could not add item: %v\n", err)
		}
		return
	}
	c.printf("%d x %s added to cart.\n", qty, line.Name)
}

func (c *Console) removeFromCart() {
	c.printf("Item number to remove: ")
	input, ok := c.readLine()
	if !ok {
		return
	}
	number, err := strconv.Atoi(input)
	if err != nil {
		c.printf("Invalid item number!\n")
		return
	}

	// items are numbered from 1 on screen
	if err := c.ledger.RemoveItem(number - 1); err != nil {
		c.printf("Invalid item number!\n")
		return
	}
	c.printf("Item removed from cart.\n")
}

func (c *Console) checkout(ctx context.Context) {
	if c.ledger.Len() == 0 {
		c.printf("\nCart is empty. No receipt to generate.\n")
		return
	}

	totals := c.rates.ComputeTotals(c.ledger.Lines())
	c.printf("\nPayment Amount: ₹%s\n", totals.GrandTotal.StringFixed(2))
	c.printf("1. Cash\n2. Card\n3. Net Banking\n4. UPI\nEnter choice: ")
	choice, ok := c.readInt(1, 4)
	if !ok {
		return
	}
	methods := []payment.Method{payment.MethodCash, payment.MethodCard, payment.MethodNetBanking, payment.MethodUPI}
	method := methods[choice-1]

	rec, err := c.service.Checkout(ctx, c.currentUser, method)
	if err != nil {
		c.printf("Checkout failed: %v\n", err)
		return
	}

	filename := receipt.FileName(rec.Customer, c.now().Unix())
	path := filepath.Join(c.receiptDir, filename)
	if err := os.WriteFile(path, []byte(receipt.Render(*rec)), 0o644); err != nil {
		c.printf("Error creating receipt file!\n")
		return
	}
	c.printf("\nReceipt saved as '%s'\n", filename)
	c.printf("Payment of ₹%s initiated. Thank you!\n", rec.Display.GrandTotal)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readInt re-prompts until the input parses and falls in [min, max].
func (c *Console) readInt(min, max int) (int, bool) {
	for {
		input, ok := c.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(input)
		if err == nil && n >= min && n <= max {
			return n, true
		}
		c.printf("Invalid choice. Enter %d-%d: ", min, max)
	}
}
