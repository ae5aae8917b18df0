package main

import (
	"flag"
	"fmt"
	"os"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Renders a resume JSON file to HTML (and optionally a native PDF) so
// template changes can be eyeballed without running the server.
func main() {
	var (
		in      = flag.String("in", "", "resume JSON file (default: built-in sample)")
		tplName = flag.String("template", "modern", "template style: modern, classic, creative, minimal")
		color   = flag.String("color", "", "creative sidebar color, e.g. #243e36")
		out     = flag.String("out", "preview.html", "output HTML file")
		pdfOut  = flag.String("pdf", "", "also write a native PDF to this path")
	)
	flag.Parse()

	data := model.DefaultResume()
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
			os.Exit(2)
		}
		data, err = model.FromJSON(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse resume: %v\n", err)
			os.Exit(2)
		}
	}

	doc := render.Render(data, render.ParseTemplate(*tplName), render.Options{SidebarColor: *color})
	html, err := render.HTML(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render html: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write html: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)

	if *pdfOut != "" {
		pdf, err := export.WritePDF(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "write pdf: %v\n", err)
			os.Exit(2)
		}
		if err := os.WriteFile(*pdfOut, pdf, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write pdf file: %v\n", err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", *pdfOut)
	}
}
