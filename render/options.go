package render

// Option configures a Page.
type Option func(*pageConfig)

type pageConfig struct {
	Title       string
	ChartScript string
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(c *pageConfig) {
		if title != "" {
			c.Title = title
		}
	}
}

// WithChartScript sets the URL the charting library is loaded from.
func WithChartScript(url string) Option {
	return func(c *pageConfig) {
		if url != "" {
			c.ChartScript = url
		}
	}
}
