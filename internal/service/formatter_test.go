package service

import (
	"strings"
	"testing"

	"catalogbot/internal/model"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFormatProductFullRecord(t *testing.T) {
	p := model.Product{
		ID:            1,
		Name:          "Nike Air Force 1",
		Price:         2500000,
		Description:   strPtr("Giày thể thao cổ điển"),
		Specification: strPtr("Size 36-44, da tổng hợp"),
		Image:         strPtr("https://example.com/af1.jpg"),
		Sale:          strPtr("10%"),
		Brand:         strPtr("Nike"),
	}

	out := FormatProduct(p)

	assert.Equal(t, "Tên: Nike Air Force 1\n"+
		"Giá: 2,500,000 VND (Giảm giá: 10%)\n"+
		"Thương hiệu: Nike\n"+
		"Mô tả: Giày thể thao cổ điển\n"+
		"Thông số kỹ thuật: Size 36-44, da tổng hợp\n"+
		"Hình ảnh: https://example.com/af1.jpg", out)
}

func TestFormatProductMissingFields(t *testing.T) {
	p := model.Product{ID: 2, Name: "Vans Old Skool", Price: 1200000}

	out := FormatProduct(p)

	assert.Contains(t, out, "Tên: Vans Old Skool\n")
	assert.Contains(t, out, "Giá: 1,200,000 VND\n")
	assert.Contains(t, out, "Mô tả: Không có mô tả\n")
	assert.Contains(t, out, "Thông số kỹ thuật: Không có thông số\n")
	assert.NotContains(t, out, "Hình ảnh:")
	assert.NotContains(t, out, "Thương hiệu:")
	assert.NotContains(t, out, "Giảm giá:")
}

func TestFormatProductIsDeterministic(t *testing.T) {
	p := model.Product{Name: "Puma Suede", Price: 1800000, Brand: strPtr("Puma")}

	first := FormatProduct(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FormatProduct(p))
	}
}

func TestFormatProductList(t *testing.T) {
	products := []model.Product{
		{Name: "A", Price: 100000},
		{Name: "B", Price: 200000},
	}

	out := FormatProductList("Tìm thấy 2 sản phẩm:", products)

	assert.True(t, strings.HasPrefix(out, "Tìm thấy 2 sản phẩm:\n\n"))
	assert.Contains(t, out, "Tên: A\n")
	assert.Contains(t, out, "Tên: B\n")
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}
