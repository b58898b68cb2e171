package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/dafibh/budgetly/internal/service"
	"github.com/rs/zerolog/log"
)

// ErrInputClosed is returned when input ends before the user chooses exit.
// Nothing is saved in that case.
var ErrInputClosed = errors.New("input closed before exit; changes not saved")

const invalidNumber = "Invalid input. Please enter a number."

var menuOptions = []string{
	"1. View Budget",
	"2. Add Budget Amount",
	"3. Add Transaction",
	"4. View Transactions",
	"5. Exit",
}

// Menu is the interactive ledger loop
type Menu struct {
	ledger   *service.LedgerService
	in       *bufio.Reader
	out      io.Writer
	currency string
	styles   styles
}

// NewMenu creates a Menu reading choices from in and writing to out
func NewMenu(ledger *service.LedgerService, in io.Reader, out io.Writer, currency string) *Menu {
	return &Menu{
		ledger:   ledger,
		in:       bufio.NewReader(in),
		out:      out,
		currency: currency,
		styles:   newStyles(out),
	}
}

// Run processes one action at a time until the user exits. The ledger is
// saved only on exit.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, m.styles.title.Render("💰 Welcome to Budgetly!"))

	for {
		m.printMenu()

		choice, err := m.prompt("Select an option (1-5): ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.viewBudget()
		case "2":
			if err := m.addBudget(); err != nil {
				return err
			}
		case "3":
			if err := m.addTransaction(); err != nil {
				return err
			}
		case "4":
			m.listTransactions()
		case "5":
			if err := m.ledger.Save(); err != nil {
				log.Error().Err(err).Msg("Failed to save ledger")
				m.println(m.styles.errText.Render(fmt.Sprintf("Could not save: %v", err)))
				break
			}
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			m.println(m.styles.errText.Render("Invalid option."))
		}

		if err := m.pause(); err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.heading.Render("=== Budgetly Menu ==="))
	for _, option := range menuOptions {
		fmt.Fprintln(m.out, option)
	}
}

func (m *Menu) viewBudget() {
	m.println(fmt.Sprintf("Current budget: %s", FormatMoney(m.currency, m.ledger.Budget())))
}

func (m *Menu) addBudget() error {
	line, err := m.prompt("Enter amount to add to budget: ")
	if err != nil {
		return err
	}
	amount, err := ParseAmount(line)
	if err != nil {
		m.println(m.styles.errText.Render(invalidNumber))
		return nil
	}

	m.ledger.AddToBudget(amount)
	m.println(m.styles.success.Render(fmt.Sprintf("Added %s to budget.", FormatMoney(m.currency, amount))))
	return nil
}

func (m *Menu) addTransaction() error {
	name, err := m.prompt("Enter transaction name: ")
	if err != nil {
		return err
	}

	line, err := m.prompt("Enter transaction amount: ")
	if err != nil {
		return err
	}
	amount, err := ParseAmount(line)
	if err != nil {
		m.println(m.styles.errText.Render(invalidNumber))
		return nil
	}

	m.ledger.AddTransaction(name, amount)
	m.ledger.AddToBudget(amount.Neg())
	m.println(m.styles.success.Render(fmt.Sprintf("Transaction '%s' of %s added.", name, FormatMoney(m.currency, amount))))
	return nil
}

func (m *Menu) listTransactions() {
	writeTransactions(m.out, m.styles, m.currency, m.ledger.Transactions())
}

// writeTransactions prints a numbered list in insertion order
func writeTransactions(w io.Writer, st styles, currency string, txs []domain.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(w, st.muted.Render("No transactions recorded."))
		return
	}
	for i, t := range txs {
		fmt.Fprintf(w, "%d. %s - %s\n", i+1, t.Name, FormatMoney(currency, t.Amount))
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

// prompt writes label and reads one line. A final line without a newline is
// still returned; ErrInputClosed only once nothing is left.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) pause() error {
	_, err := m.prompt("Press Enter to continue...")
	return err
}
