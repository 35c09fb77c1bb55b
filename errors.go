package crawl

import "github.com/pkg/errors"

// ErrorSink observes enumeration failures without changing the termination
// protocol: the crawl keeps going regardless of what the sink does with the
// error. Errors reaching a sink are wrapped with github.com/pkg/errors so
// the failing operation and path survive in the error chain; errors that
// never reach a sink (the common case, per the eagerly-lossy policy) are not
// wrapped at all, they're simply dropped.
type ErrorSink func(err error)

func wrapFailure(op, path string, err error) error {
	return errors.Wrapf(err, "%s %s", op, path)
}

// recordError is the single place every strategy funnels enumeration
// failures through: bump the error counter (if stats are attached) and, if
// the caller supplied a sink, hand it the wrapped error. It never returns an
// error itself — callers always continue traversal.
func (c *config) recordError(op, path string, err error) {
	if err == nil {
		return
	}
	if c.stats != nil {
		c.stats.errors.Add(1)
	}
	if c.errorSink != nil {
		c.errorSink(wrapFailure(op, path, err))
	}
}
