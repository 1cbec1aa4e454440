package markdown_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/issuedigest/pkg/domain/model"
	"github.com/m-mizutani/issuedigest/pkg/infra/markdown"
)

func TestRenderer_Render(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	digest := model.NewDigest("Latest Issues", now)
	digest.Append(model.RepoRef{Org: "Acme", Name: "widgets"}, model.Success([]*model.Issue{
		{Title: "Add dark mode", URL: "https://github.com/Acme/widgets/issues/2", CreatedAt: now},
		{Title: "Fix [typo] <b>", URL: "https://github.com/Acme/widgets/issues/1", CreatedAt: now},
	}))
	digest.AppendOrgFailure("Y")

	page, err := markdown.NewRenderer().Render(digest.Title, digest.Markdown())
	gt.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	gt.NoError(t, err)

	gt.Equal(t, doc.Find("title").Text(), "Latest Issues")
	gt.Equal(t, doc.Find("h1").Text(), "Latest Issues")
	gt.Equal(t, doc.Find("h2 font[color=green]").Text(), "Acme/widgets")

	links := doc.Find("h3 a")
	gt.Equal(t, links.Length(), 2)
	href, ok := links.Eq(0).Attr("href")
	gt.True(t, ok)
	gt.Equal(t, href, "https://github.com/Acme/widgets/issues/2")
	gt.Equal(t, links.Eq(0).Text(), "Add dark mode")
	gt.Equal(t, links.Eq(1).Text(), "Fix [typo] <b>")

	gt.Equal(t, doc.Find("hr").Length(), 4)
	gt.S(t, doc.Find("body").Text()).Contains("Failed to fetch repos under Y!")
}

func TestRenderer_Render_EmptyDigest(t *testing.T) {
	digest := model.NewDigest("Latest Issues", time.Now())

	page, err := markdown.NewRenderer().Render(digest.Title, digest.Markdown())
	gt.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	gt.NoError(t, err)
	gt.Equal(t, doc.Find("h1").Length(), 1)
	gt.Equal(t, doc.Find("a").Length(), 0)
	gt.S(t, doc.Find("p").Text()).Contains("Generated at")
}

func TestRenderer_EscapesTitle(t *testing.T) {
	page, err := markdown.NewRenderer().Render("<script>", "# x\n")
	gt.NoError(t, err)
	gt.S(t, string(page)).Contains("<title>&lt;script&gt;</title>")
}
