package attribution

import (
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// Resolver extracts quoted spans and resolves a speaker for each one,
// carrying resolution state forward in document order. Resolution never
// fails: an unresolved quote keeps the "Unknown Speaker" sentinel.
type Resolver struct {
	cfg        model.ParserConfig
	strategies []strategy
}

// NewResolver creates a resolver with the default strategy chain.
func NewResolver(cfg model.ParserConfig) *Resolver {
	return &Resolver{cfg: cfg, strategies: defaultStrategies()}
}

// Options carries document-level context from segmentation.
type Options struct {
	Headline       string
	Lead           string
	SubheadName    string
	SubheadTitle   string
	SubheadPreview string
}

// Resolve extracts and attributes every quote in the input text. The
// previous-speaker state is an explicit fold accumulator local to this
// call; nothing leaks across invocations.
func (r *Resolver) Resolve(text string, opts Options) []model.Quote {
	raws := extractQuotes(text)

	var quotes []model.Quote
	acc := speaker{} // previousSpeaker accumulator for the forward pass

	for _, rq := range raws {
		if opts.SubheadPreview != "" && strings.TrimSpace(rq.text) == strings.TrimSpace(opts.SubheadPreview) {
			continue // consumed by the subhead preview
		}

		// Context windows exclude the quotation marks so the anchored
		// strategy patterns see the surrounding prose directly.
		beforeEnd := rq.span.Start - openingMarkLen(text[:rq.span.Start])
		afterStart := rq.span.End + closingMarkLen(text[rq.span.End:])
		before := tail(text[:beforeEnd], r.cfg.AttributionContext)
		after := head(text[afterStart:], r.cfg.AttributionContext)

		if isNarrative(before, after) {
			continue
		}

		q := model.Quote{
			QuoteText:   rq.text,
			SpeakerName: model.UnknownSpeaker,
			Position:    rq.span,
		}

		qc := quoteContext{before: before, after: after, prev: acc}
		for _, st := range r.strategies {
			sp := st.resolve(qc)
			if sp == nil {
				continue
			}
			q.SpeakerName = sp.name
			q.SpeakerTitle = sp.title
			q.FullAttribution = sp.attribution
			if st.name == "pronoun" {
				q.IsContinuation = true
			}
			break
		}

		if q.IsAttributed() {
			acc = speaker{name: q.SpeakerName, title: q.SpeakerTitle}
		}
		quotes = append(quotes, q)
	}

	r.applyOverrides(quotes, text, opts)
	r.foldContinuations(quotes, text)

	return quotes
}

// applyOverrides binds document-level speakers to quotes still carrying
// the sentinel after per-quote resolution.
func (r *Resolver) applyOverrides(quotes []model.Quote, text string, opts Options) {
	var subhead *speaker
	if opts.SubheadName != "" {
		subhead = &speaker{name: opts.SubheadName, title: opts.SubheadTitle}
	}

	ov := detectOverrides(opts.Headline, opts.Lead, text, subhead)
	if ov == nil {
		return
	}

	for i := range quotes {
		if quotes[i].IsAttributed() {
			continue
		}
		quotes[i].SpeakerName = ov.name
		quotes[i].SpeakerTitle = ov.title
		if ov.attribution != "" {
			quotes[i].FullAttribution = ov.attribution
		}
	}
}

// foldContinuations is a left fold over the ordered quote list. An
// unattributed quote inherits the accumulator speaker only when the text
// gap since the prior quote is short, free of attribution markers, and
// spans at most one paragraph break; otherwise the accumulator resets.
func (r *Resolver) foldContinuations(quotes []model.Quote, text string) {
	acc := speaker{}
	prevEnd := -1

	for i := range quotes {
		q := &quotes[i]

		if !q.IsAttributed() && acc.name != "" && prevEnd >= 0 {
			gap := text[prevEnd:q.Position.Start]
			// The prior quote's own attribution sits inside the gap when it
			// followed the quote; it must not count as a foreign marker.
			if fa := quotes[i-1].FullAttribution; fa != "" {
				gap = strings.Replace(gap, fa, "", 1)
			}
			if len(gap) < r.cfg.ContinuationMaxGap &&
				!attributionMarkerRx.MatchString(gap) &&
				paragraphBreaks(gap) <= r.cfg.ContinuationMaxBreaks {
				q.SpeakerName = acc.name
				q.SpeakerTitle = acc.title
				q.IsContinuation = true
			} else {
				acc = speaker{}
			}
		}

		if q.IsAttributed() {
			acc = speaker{name: q.SpeakerName, title: q.SpeakerTitle}
		} else {
			acc = speaker{}
		}
		prevEnd = q.Position.End
	}
}
