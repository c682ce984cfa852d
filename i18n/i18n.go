// Package i18n maps the future package's condition codes to localized,
// human-readable descriptions. Code.String stays the canonical machine
// name; Describe is for surfaces shown to people.
package i18n

import (
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/tclib/futures/future"
)

var ErrLanguageNotSupported = errors.New("language not supported")

type Options struct {
	Fallback language.Tag
}

type Option func(*Options)

func WithFallback(fallback language.Tag) Option {
	return func(o *Options) {
		o.Fallback = fallback
	}
}

var DefaultOptions = &Options{
	Fallback: language.English,
}

var descriptions = map[future.Code]map[language.Tag]string{
	future.CodeBrokenPromise: {
		language.English: "the promise was abandoned before supplying a result",
		language.Chinese: "Promise 在提供结果前被放弃",
	},
	future.CodeFutureAlreadyRetrieved: {
		language.English: "the future was already retrieved from this promise",
		language.Chinese: "该 Promise 的 Future 已被获取",
	},
	future.CodePromiseAlreadySatisfied: {
		language.English: "the promise already holds a result",
		language.Chinese: "Promise 已持有结果",
	},
	future.CodeNoState: {
		language.English: "the handle refers to no shared state",
		language.Chinese: "句柄未关联共享状态",
	},
}

// Describe returns a description of code in lang, falling back to the
// configured fallback language (English unless overridden). It reports
// ErrLanguageNotSupported when neither language has an entry.
func Describe(code future.Code, lang language.Tag, options ...Option) (string, error) {
	opts := *DefaultOptions
	for _, option := range options {
		option(&opts)
	}

	byLang, ok := descriptions[code]
	if !ok {
		return "", errors.Errorf("unknown condition code %q", code)
	}
	if s, ok := byLang[lang]; ok {
		return s, nil
	}
	if s, ok := byLang[opts.Fallback]; ok {
		return s, nil
	}
	return "", errors.WithStack(ErrLanguageNotSupported)
}
