package facets

// Engine holds a read-only product snapshot. It is safe for concurrent use
// as long as callers do not mutate the slice they passed in.
type Engine struct {
	products []Product
	opts     Options
}

// NewEngine builds an engine over products.
func NewEngine(products []Product, opts Options) *Engine {
	return &Engine{products: products, opts: opts}
}

// Products returns the snapshot.
func (e *Engine) Products() []Product { return e.products }

// Options returns the options the engine was built with.
func (e *Engine) Options() Options { return e.opts }

// Filter returns the products matching sel.
func (e *Engine) Filter(sel Selection) []Product {
	return filterProducts(e.products, sel, e.opts)
}

// Summarize returns the facet summary for sel.
func (e *Engine) Summarize(sel Selection) Summary {
	return summarize(e.products, sel, e.opts)
}

// Weight extracts a product's weight with the engine's options.
func (e *Engine) Weight(p Product) (float64, bool) {
	return e.opts.Weight(p)
}
