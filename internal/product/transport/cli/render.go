package cli

import (
	"fmt"
	"io"

	"github.com/abgdnv/bamazon/internal/product/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// catalogChoice formats a product as a customer list entry: id, name and price.
func catalogChoice(p service.ProductDto) string {
	return fmt.Sprintf("%2d) %-51s$%7s", p.ID, p.Name, p.Price.StringFixed(2))
}

// inventoryChoice formats a product as a manager list entry: id, name, price and stock.
func inventoryChoice(p service.ProductDto) string {
	return fmt.Sprintf("%2d) %-51s$%7s %20d", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
}

// renderProducts writes the products as a table.
func renderProducts(w io.Writer, products []service.ProductDto) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"item_id", "product_name", "department_name", "price", "stock_quantity"})
	for _, p := range products {
		department := ""
		if p.Department != nil {
			department = *p.Department
		}
		t.AppendRow(table.Row{p.ID, p.Name, department, p.Price.StringFixed(2), p.Stock})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}
