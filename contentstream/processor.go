/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/jrmuizel/pdf-extract/common"
	"github.com/jrmuizel/pdf-extract/core"
	"github.com/jrmuizel/pdf-extract/errkit"
	"github.com/jrmuizel/pdf-extract/internal/transform"
	"github.com/jrmuizel/pdf-extract/model"
)

// DefaultMaxFormDepth bounds Form XObject recursion (§9 "Recursive Form
// XObjects"); a cycle of Forms referencing each other would otherwise
// recurse forever.
const DefaultMaxFormDepth = 32

// Processor is the content-stream interpreter of §4.G: it consumes an
// operator sequence, maintains the graphics/text state, and drives a Sink.
type Processor struct {
	Doc          core.Document
	Decoder      core.ContentDecoder
	FontBuilder  *model.Builder
	Sink         Sink
	MaxFormDepth int

	gs        GraphicsState
	gsStack   graphicsStateStack
	tlm       transform.Matrix
	path      Path
	fontCache map[*core.Dictionary]model.Font
	mcStack   []string
	formDepth int
}

// NewProcessor builds a Processor with the initial graphics state of §4.F.
func NewProcessor(doc core.Document, decoder core.ContentDecoder, fontBuilder *model.Builder, sink Sink) *Processor {
	return &Processor{
		Doc:          doc,
		Decoder:      decoder,
		FontBuilder:  fontBuilder,
		Sink:         sink,
		MaxFormDepth: DefaultMaxFormDepth,
		gs:           newGraphicsState(),
		tlm:          transform.IdentityMatrix(),
		fontCache:    make(map[*core.Dictionary]model.Font),
	}
}

// Run decodes content and interprets it against resources (§4.I step 5).
func (p *Processor) Run(content []byte, resources *model.Resources) error {
	ops, err := p.Decoder.Decode(content)
	if err != nil {
		return errkit.Wrap(errkit.KindFormat, "contentstream: decode failed", err)
	}
	return p.Execute(ops, resources)
}

// Execute interprets an already-decoded operator sequence against resources.
func (p *Processor) Execute(ops []core.Operation, resources *model.Resources) error {
	for _, op := range ops {
		if err := p.dispatch(op, resources); err != nil {
			return err
		}
	}
	return nil
}

func operandFloats(ops []core.Object) []float64 {
	out, err := core.GetNumbersAsFloat(ops)
	if err != nil {
		return nil
	}
	return out
}

func (p *Processor) dispatch(op core.Operation, resources *model.Resources) error {
	nums := func() []float64 { return operandFloats(op.Operands) }

	switch op.Operator {
	case "BT":
		p.gs.TS.Tm = transform.IdentityMatrix()
		p.tlm = transform.IdentityMatrix()
	case "ET":
		p.gs.TS.Tm = transform.IdentityMatrix()
		p.tlm = transform.IdentityMatrix()

	case "cm":
		n := nums()
		if len(n) != 6 {
			common.Log.Debug("contentstream: cm expects 6 operands, got %d", len(n))
			return nil
		}
		m := transform.NewMatrix(n[0], n[1], n[2], n[3], n[4], n[5])
		p.gs.CTM = m.Mult(p.gs.CTM)
	case "q":
		p.gsStack.push(p.gs)
	case "Q":
		if gs, ok := p.gsStack.pop(); ok {
			p.gs = gs
		} else {
			common.Log.Debug("contentstream: Q with empty graphics state stack")
		}
	case "gs":
		if len(op.Operands) != 1 {
			return nil
		}
		name, _ := core.GetNameVal(op.Operands[0])
		p.applyExtGState(name, resources)
	case "w":
		n := nums()
		if len(n) == 1 {
			p.gs.LineWidth = n[0]
		}
	case "J", "j", "M", "d", "ri", "i":
		// Accepted silently (§4.G).

	case "CS":
		p.setColorSpace(op.Operands, resources, true)
	case "cs":
		p.setColorSpace(op.Operands, resources, false)
	case "SC", "SCN":
		p.setColor(op.Operands, true)
	case "sc", "scn":
		p.setColor(op.Operands, false)
	case "G", "g", "RG", "rg", "K", "k":
		// Accepted silently (§4.G).

	case "Tc":
		if n := nums(); len(n) == 1 {
			p.gs.TS.CharacterSpacing = n[0]
		}
	case "Tw":
		if n := nums(); len(n) == 1 {
			p.gs.TS.WordSpacing = n[0]
		}
	case "Tz":
		if n := nums(); len(n) == 1 {
			p.gs.TS.HorizontalScaling = n[0] / 100
		}
	case "TL":
		if n := nums(); len(n) == 1 {
			p.gs.TS.Leading = n[0]
		}
	case "Ts":
		if n := nums(); len(n) == 1 {
			p.gs.TS.Rise = n[0]
		}
	case "Tf":
		if len(op.Operands) != 2 {
			common.Log.Debug("contentstream: Tf expects 2 operands, got %d", len(op.Operands))
			return nil
		}
		name, _ := core.GetNameVal(op.Operands[0])
		size, _ := core.GetNumberAsFloat(op.Operands[1])
		font, err := p.resolveFont(name, resources)
		if err != nil {
			return err
		}
		p.gs.TS.Font = font
		p.gs.TS.FontSize = size

	case "Tm":
		n := nums()
		if len(n) != 6 {
			common.Log.Debug("contentstream: Tm expects 6 operands, got %d", len(n))
			return nil
		}
		m := transform.NewMatrix(n[0], n[1], n[2], n[3], n[4], n[5])
		p.tlm = m
		p.gs.TS.Tm = m
		p.Sink.EndLine()
	case "Td":
		n := nums()
		if len(n) != 2 {
			return nil
		}
		p.tlm = p.tlm.Translate(n[0], n[1])
		p.gs.TS.Tm = p.tlm
		p.Sink.EndLine()
	case "TD":
		n := nums()
		if len(n) != 2 {
			return nil
		}
		p.gs.TS.Leading = -n[1]
		p.tlm = p.tlm.Translate(n[0], n[1])
		p.gs.TS.Tm = p.tlm
		p.Sink.EndLine()
	case "T*":
		p.tlm = p.tlm.Translate(0, -p.gs.TS.Leading)
		p.gs.TS.Tm = p.tlm
		p.Sink.EndLine()

	case "Tj":
		if len(op.Operands) != 1 {
			return nil
		}
		s, ok := core.GetStringBytes(op.Operands[0])
		if !ok {
			return nil
		}
		p.showText(s)
	case "'":
		p.tlm = p.tlm.Translate(0, -p.gs.TS.Leading)
		p.gs.TS.Tm = p.tlm
		p.Sink.EndLine()
		if len(op.Operands) == 1 {
			if s, ok := core.GetStringBytes(op.Operands[0]); ok {
				p.showText(s)
			}
		}
	case "\"":
		if len(op.Operands) == 3 {
			if aw, ok := core.GetNumberAsFloat(op.Operands[0]); ok {
				p.gs.TS.WordSpacing = aw
			}
			if ac, ok := core.GetNumberAsFloat(op.Operands[1]); ok {
				p.gs.TS.CharacterSpacing = ac
			}
			p.tlm = p.tlm.Translate(0, -p.gs.TS.Leading)
			p.gs.TS.Tm = p.tlm
			p.Sink.EndLine()
			if s, ok := core.GetStringBytes(op.Operands[2]); ok {
				p.showText(s)
			}
		}
	case "TJ":
		if len(op.Operands) != 1 {
			return nil
		}
		arr, ok := core.GetArray(op.Operands[0])
		if !ok {
			return nil
		}
		p.showTextArray(arr)

	case "m":
		n := nums()
		if len(n) == 2 {
			p.path.MoveTo(n[0], n[1])
		}
	case "l":
		n := nums()
		if len(n) == 2 {
			p.path.LineTo(n[0], n[1])
		}
	case "c":
		n := nums()
		if len(n) == 6 {
			p.path.CurveTo(n[0], n[1], n[2], n[3], n[4], n[5])
		}
	case "v":
		n := nums()
		if len(n) == 4 {
			p.path.CurveToV(n[0], n[1], n[2], n[3])
		}
	case "y":
		n := nums()
		if len(n) == 4 {
			p.path.CurveToY(n[0], n[1], n[2], n[3])
		}
	case "h":
		p.path.Close()
	case "re":
		n := nums()
		if len(n) == 4 {
			p.path.Rect(n[0], n[1], n[2], n[3])
		}
	case "S":
		p.Sink.Stroke(&p.path, p.gs.CTM)
		p.path.Reset()
	case "F", "f":
		p.Sink.Fill(&p.path, p.gs.CTM)
		p.path.Reset()
	case "n":
		p.path.Reset()
	case "W", "w*":
		// Clip recognized, not tracked (§4.E).
	case "s":
		common.Log.Trace("contentstream: s (close+stroke) unhandled in core, painting stroke only")
		p.path.Close()
		p.Sink.Stroke(&p.path, p.gs.CTM)
		p.path.Reset()
	case "b", "B", "B*", "f*":
		common.Log.Trace("contentstream: %s unhandled in core (shapes are peripheral to text extraction)", op.Operator)
		p.path.Reset()

	case "BMC", "BDC":
		p.mcStack = append(p.mcStack, op.Operator)
	case "EMC":
		if len(p.mcStack) > 0 {
			p.mcStack = p.mcStack[:len(p.mcStack)-1]
		} else {
			common.Log.Debug("contentstream: EMC with empty marked-content stack")
		}

	case "Do":
		if len(op.Operands) != 1 {
			return nil
		}
		name, _ := core.GetNameVal(op.Operands[0])
		return p.doXObject(name, resources)

	case "BI":
		// Inline image data was already consumed by the tokenizer; nothing
		// to interpret for text extraction.

	default:
		common.Log.Trace("contentstream: unknown operator %q, ignoring", op.Operator)
	}
	return nil
}

func (p *Processor) applyExtGState(name string, resources *model.Resources) {
	dict, ok := resources.ExtGState(p.Doc, name)
	if !ok {
		common.Log.Debug("contentstream: gs resource %q not found", name)
		return
	}
	if t, ok := core.GetNameVal(p.Doc.Resolve(dict.Get("Type"))); ok && t != "ExtGState" {
		common.Log.Debug("contentstream: ExtGState %q has unexpected /Type %q", name, t)
	}
	smaskObj := p.Doc.Resolve(dict.Get("SMask"))
	switch v := smaskObj.(type) {
	case nil:
		// Not present: leave smask untouched.
	case core.Name:
		if string(v) == "None" {
			p.gs.SMask = nil
		}
	default:
		if d, ok := core.GetDict(smaskObj); ok {
			p.gs.SMask = d
		}
	}
}

func (p *Processor) setColorSpace(operands []core.Object, resources *model.Resources, stroking bool) {
	if len(operands) != 1 {
		return
	}
	name, ok := core.GetNameVal(operands[0])
	if !ok {
		return
	}
	cs, err := model.BuildColorSpace(p.Doc, name, resources.ColorSpaceDict())
	if err != nil {
		common.Log.Debug("contentstream: colorspace %q: %v", name, err)
		return
	}
	if stroking {
		p.gs.StrokeColorSpace = cs
		p.gs.StrokeColor = nil
	} else {
		p.gs.FillColorSpace = cs
		p.gs.FillColor = nil
	}
}

func (p *Processor) setColor(operands []core.Object, stroking bool) {
	cs := p.gs.FillColorSpace
	if stroking {
		cs = p.gs.StrokeColorSpace
	}
	var vec []float64
	if cs == nil || cs.Kind != model.Pattern {
		vec = operandFloats(operands)
	}
	if stroking {
		p.gs.StrokeColor = vec
	} else {
		p.gs.FillColor = vec
	}
}

// resolveFont implements Tf's resource lookup with per-page interning
// (§3 "Lifetimes": font records are interned by resource-name and outlive
// all streams on the same page).
func (p *Processor) resolveFont(name string, resources *model.Resources) (model.Font, error) {
	obj, ok := resources.Font(p.Doc, name)
	if !ok {
		return nil, errkit.Format("contentstream: Tf resource %q not found", name)
	}
	dict, ok := core.GetDict(obj)
	if !ok {
		return nil, errkit.Format("contentstream: Tf resource %q is not a dictionary", name)
	}
	if font, ok := p.fontCache[dict]; ok {
		return font, nil
	}
	font, err := p.FontBuilder.Build(dict)
	if err != nil {
		return nil, errkit.Wrap(errkit.KindFormat, "contentstream: font resource "+name, err)
	}
	p.fontCache[dict] = font
	return font, nil
}

// showText implements the show_text(s) algorithm of §4.G.
func (p *Processor) showText(s []byte) {
	font := p.gs.TS.Font
	if font == nil {
		common.Log.Debug("contentstream: text-showing operator with no font set, ignoring")
		return
	}
	p.Sink.BeginWord()
	pos := 0
	for pos < len(s) {
		code, n, ok := font.NextChar(s, pos)
		if !ok {
			break
		}
		pos += n

		ts := &p.gs.TS
		tsm := transform.NewMatrix(ts.HorizontalScaling, 0, 0, 1, 0, ts.Rise)
		trm := tsm.Mult(ts.Tm).Mult(p.gs.CTM)

		w0 := font.Width(code) / 1000
		spacing := ts.CharacterSpacing
		if font.IsSimpleSpace(code, n) {
			spacing += ts.WordSpacing
		}

		p.Sink.OutputCharacter(trm, w0, spacing, ts.FontSize, font.DecodeChar(code))

		tx := ts.HorizontalScaling * (w0*ts.FontSize + spacing)
		ts.Tm = ts.Tm.Translate(tx, 0)
	}
	p.Sink.EndWord()
}

// showTextArray implements the TJ operator: strings show via showText,
// numbers shift the text matrix without emitting spacing (§4.G).
func (p *Processor) showTextArray(arr *core.Array) {
	ts := &p.gs.TS
	for _, elem := range arr.Elements {
		if s, ok := core.GetStringBytes(elem); ok {
			p.showText(s)
			continue
		}
		if adj, ok := core.GetNumberAsFloat(elem); ok {
			tx := ts.HorizontalScaling * (-adj / 1000) * ts.FontSize
			ts.Tm = ts.Tm.Translate(tx, 0)
		}
	}
}

// doXObject implements the Do operator's Form-XObject recursion (§4.G).
func (p *Processor) doXObject(name string, resources *model.Resources) error {
	stream, ok := resources.XObject(p.Doc, name)
	if !ok {
		common.Log.Debug("contentstream: Do resource %q not found", name)
		return nil
	}
	subtype, _ := core.GetNameVal(p.Doc.Resolve(stream.Dictionary.Get("Subtype")))
	if subtype != "Form" {
		return nil // Image/PS are ignored (§4.G).
	}

	if p.formDepth >= p.MaxFormDepth {
		return errkit.Format("contentstream: Form XObject recursion exceeded depth %d", p.MaxFormDepth)
	}

	subResources := resources
	if resDict, ok := core.GetDict(p.Doc.Resolve(stream.Dictionary.Get("Resources"))); ok {
		subResources = model.NewResources(resDict)
	}

	p.formDepth++
	err := p.Run(stream.Bytes, subResources)
	p.formDepth--
	return err
}
