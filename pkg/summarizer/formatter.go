package summarizer

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to a formatted string.
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// Translator maps formatter labels to another language.
type Translator func(key string) string

// Option configures a formatter.
type Option func(*options)

type options struct {
	translator Translator
}

// WithTranslator sets the label translator. The default is identity.
func WithTranslator(t Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

func buildOptions(opts []Option) options {
	o := options{
		translator: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
