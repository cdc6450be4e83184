// Package theme centralises the styling primitives shared by the server
// rendered pages and the static viewer.
package theme

// Palette holds the colour primitives of the dark default look.
type Palette struct {
	Background string
	Panel      string
	Text       string
	Muted      string
	Line       string
	Accent     string
	AccentWarm string
	NoData     string
	LowSample  string
}

// Default returns the application palette.
func Default() Palette {
	return Palette{
		Background: "#111111",
		Panel:      "#161616",
		Text:       "#E6E6E6",
		Muted:      "#A8A8A8",
		Line:       "#2A2A2A",
		Accent:     "#6AA9FF",
		AccentWarm: "#FFB86A",
		NoData:     "#0B0B0B",
		LowSample:  "#2B1E00",
	}
}

// CSSVariables renders the palette as a CSS custom-property block for the
// page head.
func (p Palette) CSSVariables() string {
	return ":root{" +
		"--bg:" + p.Background + ";" +
		"--panel:" + p.Panel + ";" +
		"--text:" + p.Text + ";" +
		"--muted:" + p.Muted + ";" +
		"--line:" + p.Line + ";" +
		"--accent:" + p.Accent + ";" +
		"--accent-warm:" + p.AccentWarm + ";" +
		"--nodata:" + p.NoData + ";" +
		"--lowsample:" + p.LowSample + ";" +
		"}"
}
