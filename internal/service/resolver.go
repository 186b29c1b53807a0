package service

import (
	"context"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

// VariantResolver сопоставляет SKU или описание (продукт + атрибуты) с вариантом.
type VariantResolver struct {
	catalog VariantCatalog
}

func NewVariantResolver(catalog VariantCatalog) *VariantResolver {
	return &VariantResolver{catalog: catalog}
}

func (r *VariantResolver) Resolve(ctx context.Context, sku string) (entities.Variant, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return entities.Variant{}, entities.NewValidationError("sku", "must not be empty")
	}
	return r.catalog.GetBySKU(ctx, sku)
}

// ResolveByDescription требует ровно одного варианта с точно таким же набором атрибутов.
// Ключи и значения сравниваются без учета регистра и крайних пробелов.
func (r *VariantResolver) ResolveByDescription(ctx context.Context, baseProduct string, attrs map[string]string) (entities.Variant, error) {
	baseProduct = strings.TrimSpace(baseProduct)
	if baseProduct == "" {
		return entities.Variant{}, entities.NewValidationError("base_product", "must not be empty")
	}

	variants, err := r.catalog.ListByProductName(ctx, baseProduct)
	if err != nil {
		return entities.Variant{}, err
	}

	want := normalizeAttributes(attrs)

	var matches []entities.Variant
	for _, v := range variants {
		candidate := v
		candidate.Attributes = normalizeAttributes(v.Attributes)
		if candidate.MatchesAttributes(want) {
			matches = append(matches, v)
		}
	}

	if len(matches) != 1 {
		return entities.Variant{}, &entities.AmbiguousOrNotFoundError{
			BaseProduct: baseProduct,
			Attributes:  want,
			Candidates:  len(matches),
		}
	}
	return matches[0], nil
}

// Lookup находит вариант по id, а если id не задан - по SKU.
func (r *VariantResolver) Lookup(ctx context.Context, ref entities.LineRequest) (entities.Variant, error) {
	if ref.VariantID > 0 {
		return r.catalog.GetByID(ctx, ref.VariantID)
	}
	if strings.TrimSpace(ref.SKU) != "" {
		return r.Resolve(ctx, ref.SKU)
	}
	return entities.Variant{}, entities.NewValidationError("variant", "variant_id or sku is required")
}

func normalizeAttributes(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}
