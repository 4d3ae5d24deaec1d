package poll

type config struct {
	name string
	mode Mode

	startImmediately bool

	onError             ErrorHandler
	reportContextCancel bool

	onPanic PanicHandler
}

// Option configures a Poller at construction time.
type Option func(*config)

func defaultConfig() config {
	return config{
		mode:                FixedRate,
		reportContextCancel: false,
	}
}

// WithName sets a human-friendly name carried by error/panic reports and Status.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithMode sets the scheduling mode. Default is FixedRate.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithStartImmediately controls whether the first tick happens at Start
// instead of one interval later. Default is false.
func WithStartImmediately(v bool) Option {
	return func(c *config) { c.startImmediately = v }
}

// WithErrorHandler sets the error handler. If not set, tick errors are
// reported to stderr by default. Panics in the handler are contained: they
// are recovered and reported to stderr.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) { c.onError = h }
}

// WithReportContextCancel controls whether context.Canceled and
// context.DeadlineExceeded tick errors are reported. They are filtered by
// default because they are common during shutdown.
func WithReportContextCancel(report bool) Option {
	return func(c *config) { c.reportContextCancel = report }
}

// WithPanicHandler sets the panic handler. If not set, tick panics are
// reported to stderr by default. Panics in the handler are contained.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) { c.onPanic = h }
}
