package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteReadme documents the generated files and their row counts.
func WriteReadme(dir string, format Format, tables []*Table) (string, error) {
	var b strings.Builder
	b.WriteString("# Synthetic E-Commerce Dataset\n\n")
	b.WriteString("Generated by `ecomdata generate`. All timestamps fall within the last three years.\n\n")
	b.WriteString("## Files & Row Counts\n")
	for _, t := range tables {
		fmt.Fprintf(&b, "- %s: %d rows\n", format.FileName(t.Name), t.Len())
	}
	b.WriteString("\n## Validation Highlights\n")
	b.WriteString("- Referentials: orders -> customers, order_items -> (orders, products), inventory_events -> products.\n")
	b.WriteString("- Financials: total_amount = subtotal + shipping_cost + tax_amount (rounded to cents).\n")
	b.WriteString("- Inventory: sale events scale with item quantities sold; periodic restocks added.\n")
	b.WriteString("- Loyalty: tiers and lifetime value buckets derive from final cumulative spend.\n")

	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
