package captcha

import (
	"html"
	"strconv"
	"strings"
)

const (
	minLines     = 2
	lineSpread   = 3 // 2-4 条
	minDots      = 10
	dotSpread    = 20
	minDotRadius = 0.5
	maxDotRadius = 2.5
	jitterY      = 5.0
	maxRotate    = 15.0
	lineOpacity  = "0.3"
	dotOpacity   = "0.2"
)

// render 依次绘制：背景、干扰线、文字、噪点。噪点位于文字之上。
func (e *Engine) render(code string) string {
	w, h := float64(e.cfg.Width), float64(e.cfg.Height)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	b.WriteString(strconv.Itoa(e.cfg.Width))
	b.WriteString(`" height="`)
	b.WriteString(strconv.Itoa(e.cfg.Height))
	b.WriteString(`" viewBox="0 0 `)
	b.WriteString(strconv.Itoa(e.cfg.Width))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(e.cfg.Height))
	b.WriteString(`">`)

	bg := e.cfg.BackgroundPalette[e.rnd.IntN(len(e.cfg.BackgroundPalette))]
	b.WriteString(`<rect width="100%" height="100%" fill="`)
	b.WriteString(attr(bg))
	b.WriteString(`" rx="8"/>`)

	if e.cfg.Lines {
		e.writeLines(&b, w, h)
	}

	e.writeText(&b, []rune(code), w, h)

	if e.cfg.Noise {
		e.writeNoise(&b, w, h)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func (e *Engine) writeLines(b *strings.Builder, w, h float64) {
	count := minLines + e.rnd.IntN(lineSpread)
	for i := 0; i < count; i++ {
		x1 := e.uniform(0, w)
		y1 := e.uniform(0, h)
		x2 := e.uniform(0, w)
		y2 := e.uniform(0, h)

		b.WriteString(`<line x1="`)
		b.WriteString(num(x1))
		b.WriteString(`" y1="`)
		b.WriteString(num(y1))
		b.WriteString(`" x2="`)
		b.WriteString(num(x2))
		b.WriteString(`" y2="`)
		b.WriteString(num(y2))
		b.WriteString(`" stroke="`)
		b.WriteString(attr(e.cfg.ForegroundColor))
		b.WriteString(`" stroke-opacity="` + lineOpacity + `" stroke-width="1" stroke-linecap="round"/>`)
	}
}

func (e *Engine) writeText(b *strings.Builder, glyphs []rune, w, h float64) {
	b.WriteString(`<g>`)
	slot := w / float64(len(glyphs)+1)
	for i, g := range glyphs {
		x := slot * (float64(i) + 0.5)
		y := h/2 + e.uniform(-jitterY, jitterY)
		rotate := e.uniform(-maxRotate, maxRotate)

		b.WriteString(`<text x="`)
		b.WriteString(num(x))
		b.WriteString(`" y="`)
		b.WriteString(num(y))
		b.WriteString(`" font-family="`)
		b.WriteString(attr(e.cfg.FontFamily))
		b.WriteString(`" font-size="`)
		b.WriteString(strconv.FormatFloat(e.cfg.FontSize, 'f', -1, 64))
		b.WriteString(`" font-weight="bold" fill="`)
		b.WriteString(attr(e.cfg.ForegroundColor))
		b.WriteString(`" text-anchor="middle" dominant-baseline="middle" transform="rotate(`)
		b.WriteString(num(rotate))
		b.WriteByte(' ')
		b.WriteString(num(x))
		b.WriteByte(' ')
		b.WriteString(num(y))
		b.WriteString(`)" style="user-select: none;">`)
		b.WriteString(html.EscapeString(string(g)))
		b.WriteString(`</text>`)
	}
	b.WriteString(`</g>`)
}

func (e *Engine) writeNoise(b *strings.Builder, w, h float64) {
	count := minDots + e.rnd.IntN(dotSpread)
	for i := 0; i < count; i++ {
		cx := e.uniform(0, w)
		cy := e.uniform(0, h)
		r := e.uniform(minDotRadius, maxDotRadius)

		b.WriteString(`<circle cx="`)
		b.WriteString(num(cx))
		b.WriteString(`" cy="`)
		b.WriteString(num(cy))
		b.WriteString(`" r="`)
		b.WriteString(num(r))
		b.WriteString(`" fill="`)
		b.WriteString(attr(e.cfg.ForegroundColor))
		b.WriteString(`" fill-opacity="` + dotOpacity + `"/>`)
	}
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rnd.Float64()*(hi-lo)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func attr(s string) string {
	return html.EscapeString(s)
}
