package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fitbite-be/internal/entity"
)

// Renderer produces a receipt document for a paid purchase and returns an
// opaque path the purchase stores. Implementations own the storage layout.
type Renderer interface {
	Render(purchase *entity.PlanPurchase, items []entity.PurchaseItem) (string, error)
	Remove(path string) error
}

// FileRenderer writes plain-text receipts under a media root directory.
type FileRenderer struct {
	root string
}

func NewFileRenderer(root string) *FileRenderer {
	return &FileRenderer{root: root}
}

func (r *FileRenderer) Render(purchase *entity.PlanPurchase, items []entity.PurchaseItem) (string, error) {
	dir := filepath.Join(r.root, "receipts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt directory: %w", err)
	}

	relative := filepath.Join("receipts", fmt.Sprintf("receipt_%s.txt", purchase.Id))
	full := filepath.Join(r.root, relative)

	content := r.compose(purchase, items)
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return relative, nil
}

func (r *FileRenderer) Remove(path string) error {
	if path == "" {
		return nil
	}
	full := filepath.Join(r.root, path)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *FileRenderer) compose(purchase *entity.PlanPurchase, items []entity.PurchaseItem) string {
	var b strings.Builder

	b.WriteString("FitBite - mokėjimo kvitas\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString(fmt.Sprintf("Užsakymo nr.: %s\n", purchase.Id))
	if purchase.TransactionReference != nil {
		b.WriteString(fmt.Sprintf("Operacijos nr.: %s\n", *purchase.TransactionReference))
	}
	if purchase.PaidAt != nil {
		b.WriteString(fmt.Sprintf("Apmokėta: %s\n", purchase.PaidAt.Format(time.RFC3339)))
	}
	b.WriteString(fmt.Sprintf("Pirkėjas: %s <%s>\n\n", purchase.BuyerFullName, purchase.BuyerEmail))

	b.WriteString(fmt.Sprintf("Planas: %s (%d d.)\n", purchase.PlanNameSnapshot, purchase.PeriodDays))
	b.WriteString(fmt.Sprintf("Bazinė kaina: %s\n", formatCents(purchase.BasePriceCents, purchase.Currency)))
	if purchase.DiscountAmountCents > 0 && purchase.DiscountLabel != nil {
		b.WriteString(fmt.Sprintf("Nuolaida (%s): -%s\n", *purchase.DiscountLabel, formatCents(purchase.DiscountAmountCents, purchase.Currency)))
	}
	b.WriteString(fmt.Sprintf("Iš viso: %s\n\n", formatCents(purchase.PriceCents, purchase.Currency)))

	if purchase.InvoiceNeeded && purchase.CompanyName != nil {
		b.WriteString(fmt.Sprintf("Sąskaita išrašoma: %s\n", *purchase.CompanyName))
		if purchase.CompanyCode != nil {
			b.WriteString(fmt.Sprintf("Įmonės kodas: %s\n", *purchase.CompanyCode))
		}
		if purchase.VatCode != nil {
			b.WriteString(fmt.Sprintf("PVM kodas: %s\n", *purchase.VatCode))
		}
		b.WriteString("\n")
	}

	if len(items) > 0 {
		b.WriteString("Patiekalai:\n")
		for _, item := range items {
			b.WriteString(fmt.Sprintf("  %s / %s - %s\n", item.DayOfWeek, item.MealType, item.MealTitle))
		}
	}

	return b.String()
}

func formatCents(cents int, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}
