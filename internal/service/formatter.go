package service

import (
	"fmt"
	"strings"

	"catalogbot/internal/model"
	"catalogbot/internal/utils"
)

const formatFailure = "Không thể hiển thị thông tin sản phẩm"

// FormatProduct renders one product as a fixed-order multi-line block:
// name, price (with sale annotation when present), brand, description,
// specification, image. Missing description/specification get placeholder
// text; the image line is omitted entirely when absent. Rendering never
// fails: any panic degrades to a placeholder string.
func FormatProduct(p model.Product) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = formatFailure
		}
	}()

	var b strings.Builder
	fmt.Fprintf(&b, "Tên: %s\n", p.Name)
	fmt.Fprintf(&b, "Giá: %s VND", utils.GroupThousands(p.Price))

	if p.Sale != nil && *p.Sale != "" {
		fmt.Fprintf(&b, " (Giảm giá: %s)\n", *p.Sale)
	} else {
		b.WriteString("\n")
	}
	if p.Brand != nil && *p.Brand != "" {
		fmt.Fprintf(&b, "Thương hiệu: %s\n", *p.Brand)
	}

	description := "Không có mô tả"
	if p.Description != nil && *p.Description != "" {
		description = *p.Description
	}
	fmt.Fprintf(&b, "Mô tả: %s\n", description)

	specification := "Không có thông số"
	if p.Specification != nil && *p.Specification != "" {
		specification = *p.Specification
	}
	fmt.Fprintf(&b, "Thông số kỹ thuật: %s\n", specification)

	if p.Image != nil && *p.Image != "" {
		fmt.Fprintf(&b, "Hình ảnh: %s", *p.Image)
	}

	return b.String()
}

// FormatProductList renders a summary line followed by every product block.
func FormatProductList(summary string, products []model.Product) string {
	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	for _, p := range products {
		b.WriteString(FormatProduct(p))
		b.WriteString("\n\n")
	}
	return b.String()
}
