package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func TestHTML_SelfContainedPage(t *testing.T) {
	doc := Render(sampleResume(), TemplateModern, Options{})
	html, err := HTML(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Alex Johnson</title>")
	assert.Contains(t, html, ":root{--accent:#243e36;--accent-light:#f1f7ed;}")
	assert.Contains(t, html, `class="contact contact-email"`)
	assert.Contains(t, html, `<h2 class="section-title">Experience</h2>`)
	// everything inlined, nothing fetched
	assert.NotContains(t, html, "<link")
	assert.NotContains(t, html, "src=")
}

func TestHTML_SidebarOnlyForCreative(t *testing.T) {
	data := sampleResume()

	creative, err := HTML(Render(data, TemplateCreative, Options{}))
	require.NoError(t, err)
	assert.Contains(t, creative, `<aside class="sidebar">`)
	assert.Contains(t, creative, `class="tpl-creative"`)

	modern, err := HTML(Render(data, TemplateModern, Options{}))
	require.NoError(t, err)
	assert.NotContains(t, modern, `<aside class="sidebar">`)
}

func TestHTML_CreativeAccentVariables(t *testing.T) {
	doc := Render(sampleResume(), TemplateCreative, Options{SidebarColor: "#112233"})
	html, err := HTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, ":root{--accent:#112233;--accent-light:#11223380;}")
}

func TestHTML_EscapesUserContent(t *testing.T) {
	data := &model.Resume{
		PersonalInfo: model.PersonalInfo{FullName: "<script>alert(1)</script>"},
		Summary:      `He said "hello" & left`,
	}
	html, err := HTML(Render(data, TemplateModern, Options{}))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestHTML_ProjectLink(t *testing.T) {
	html, err := HTML(Render(sampleResume(), TemplateClassic, Options{}))
	require.NoError(t, err)

	// stored address becomes clickable, label stays compact
	assert.Contains(t, html, `href="https://github.com/alexj/ledgerd"`)
	assert.Contains(t, html, ">github.com</a>")
}

func TestHTML_EveryTemplateHasAStylesheet(t *testing.T) {
	for _, tpl := range AllTemplates() {
		html, err := HTML(Render(sampleResume(), tpl, Options{}))
		require.NoError(t, err, "template %s", tpl)
		assert.Contains(t, html, "@page", "template %s", tpl)
	}
}
