package analyzer

import (
	"strings"

	"github.com/jank-lang/jank/reader"
	"github.com/jank-lang/jank/value"
)

const (
	interpOpen  = "#{"
	interpClose = "}#"
)

// analyzeNativeRaw handles (native/raw "..."): the
// string argument is split into alternating verbatim and interpolated
// segments delimited by "#{" ... "}#"; each interpolated segment is
// re-lexed, must yield exactly one form, and that form is analyzed
// recursively as an expression with needs_box=true.
func analyzeNativeRaw(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	args := form.Rest().Cells
	if len(args) != 1 {
		return nil, errorf(Shape, "native/raw: expected exactly one argument, got %d", len(args))
	}
	arg := args[0]
	if arg.Type != value.StringType {
		return nil, errorf(Type, "native/raw: argument must be a string, got %s", arg.Type)
	}

	chunks, err := splitNativeRaw(arg.Name)
	if err != nil {
		return nil, err
	}

	var result []NativeChunk
	for _, c := range chunks {
		if !c.isForm {
			if c.text != "" {
				result = append(result, NativeChunk{Text: c.text})
			}
			continue
		}
		forms, err := reader.All(reader.New("native/raw", strings.NewReader(c.text)))
		if err != nil {
			return nil, errorf(Interpolation, "native/raw: %v", err)
		}
		if len(forms) != 1 {
			return nil, errorf(Interpolation, "native/raw: interpolation must contain exactly one form, got %d", len(forms))
		}
		expr, err := a.Analyze(forms[0], frame, Statement, fnCtx, true)
		if err != nil {
			return nil, err
		}
		result = append(result, NativeChunk{Expr: expr})
	}

	return &NativeRaw{ExprBase: newBase(pos, frame, needsBox), Chunks: result}, nil
}

type rawChunk struct {
	text   string
	isForm bool
}

// splitNativeRaw scans text for interpOpen/interpClose delimiter pairs,
// returning an ordered sequence of verbatim and interpolated-form chunks.
func splitNativeRaw(text string) ([]rawChunk, error) {
	var chunks []rawChunk
	i := 0
	for i < len(text) {
		start := strings.Index(text[i:], interpOpen)
		if start < 0 {
			chunks = append(chunks, rawChunk{text: text[i:]})
			break
		}
		start += i
		if start > i {
			chunks = append(chunks, rawChunk{text: text[i:start]})
		}
		innerStart := start + len(interpOpen)
		end := strings.Index(text[innerStart:], interpClose)
		if end < 0 {
			return nil, errorf(Interpolation, "native/raw: unterminated %q", interpOpen)
		}
		end += innerStart
		chunks = append(chunks, rawChunk{text: text[innerStart:end], isForm: true})
		i = end + len(interpClose)
	}
	return chunks, nil
}
