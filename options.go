package erroz

import "golang.org/x/text/language"

// Options configures how a Factory builds classes and instances.
type Options struct {
	// Renderer renders Definition.Template for every instance.
	// If nil, DefaultRenderer is used.
	Renderer Renderer

	// IncludeStack adds the instance stack trace as "stack" to the data
	// of the JSend output and to structured log output.
	IncludeStack bool

	// Language selects the case mapping rules used to derive default codes.
	Language language.Tag
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		Renderer:     DefaultRenderer,
		IncludeStack: false,
		Language:     language.Und,
	}
}

// WithRenderer replaces the template renderer.
// A nil renderer restores DefaultRenderer.
//
// Example:
//
//	f := erroz.NewFactory(erroz.WithRenderer(func(tmpl string, data erroz.Data) string {
//	    return "Something went wrong... " + erroz.DefaultRenderer(tmpl, data)
//	}))
func WithRenderer(renderer Renderer) Option {
	return func(opts *Options) {
		if renderer == nil {
			renderer = DefaultRenderer
		}
		opts.Renderer = renderer
	}
}

// WithIncludeStack controls whether stack traces are exposed in the
// JSend output and structured logs.
func WithIncludeStack(include bool) Option {
	return func(opts *Options) {
		opts.IncludeStack = include
	}
}

// WithLanguage sets the language used to lower case default codes.
func WithLanguage(tag language.Tag) Option {
	return func(opts *Options) {
		opts.Language = tag
	}
}
