package actions

import (
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

// Rule is one replacement of a Replace action. With may refer to groups
// of Pattern as $1 or ${name}.
type Rule struct {
	Pattern *regexp2.Regexp
	With    string
}

// Replace renders its single argument and rewrites it with the first rule
// whose pattern matches; every match of that rule is replaced and the
// result is composed to NFC. Text no rule matches is added unchanged.
type Replace struct {
	Rules []Rule
}

// NewReplace builds a Replace from pattern, replacement pairs. It panics
// on an odd number of strings or an invalid pattern.
func NewReplace(pairs ...string) *Replace {
	if len(pairs)%2 != 0 {
		panic("actions: NewReplace needs pattern, replacement pairs")
	}
	r := &Replace{}
	for i := 0; i < len(pairs); i += 2 {
		r.Rules = append(r.Rules, Rule{
			Pattern: regexp2.MustCompile(pairs[i], regexp2.None),
			With:    pairs[i+1],
		})
	}
	return r
}

// Accent returns a Replace that puts the combining mark after every
// letter and composes the result, turning \hat{o} into ô.
func Accent(mark rune) *Replace {
	return NewReplace(`(\p{L})`, "${1}"+string(mark))
}

func (a *Replace) Execute(doc *document.Document, _, args []command.Node) error {
	if err := exactly("replace", 1, args); err != nil {
		return err
	}
	text, err := doc.Convert(args[0])
	if err != nil {
		return err
	}

	for _, rule := range a.Rules {
		ok, err := rule.Pattern.MatchString(text)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "cannot match %q", rule.Pattern.String())
		}
		if !ok {
			continue
		}
		out, err := rule.Pattern.Replace(text, rule.With, -1, -1)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "cannot replace %q", rule.Pattern.String())
		}
		doc.AddText(norm.NFC.String(out))
		return nil
	}

	logger := logging.GetLogger("actions")
	logger.Warn().Str("text", text).Msg("No replacement matched")
	doc.AddText(text)
	return nil
}
