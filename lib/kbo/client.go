// Package kbo drives the public KBO record site. The record pages are
// ASP.NET WebForms, so season/team filters and pagination are applied
// by replaying the page's hidden form state with the right postback
// target, the same dance a browser performs.
package kbo

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"time"

	"github.com/Hawk-Jo/baseball-analysis/lib/stats"
	"github.com/Hawk-Jo/baseball-analysis/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/kbo")

const (
	HitterRecordURL  = "https://www.koreabaseball.com/Record/Player/HitterBasic/Basic1.aspx"
	PitcherRecordURL = "https://www.koreabaseball.com/Record/Player/PitcherBasic/Basic1.aspx"
)

// WebForms control ids for the filter selects and the pager buttons.
const (
	fieldSeason = "ctl00$ctl00$ctl00$cphContents$cphContents$cphContents$ddlSeason$ddlSeason"
	fieldTeam   = "ctl00$ctl00$ctl00$cphContents$cphContents$cphContents$ddlTeam$ddlTeam"
	pagerButton = "ctl00$ctl00$ctl00$cphContents$cphContents$cphContents$ucPager$btnNo%d"
)

// the site caps a single team/season listing at five pages
const maxPages = 5

// RecordSource produces raw per-player season records given a season
// and team. The analysis stages depend on this interface so they can
// run against canned fixtures instead of the live site.
type RecordSource interface {
	FetchHitters(ctx context.Context, season int, team string) ([]stats.HitterSeasonRecord, error)
	FetchPitchers(ctx context.Context, season int, team string) ([]stats.PitcherSeasonRecord, error)
}

type ClientOptions struct {
	// delay between navigation steps, out of courtesy to the site.
	// zero means DefaultNavDelay.
	NavDelay time.Duration
}

const DefaultNavDelay = time.Second

type Client struct {
	http     *resty.Client
	navDelay time.Duration
}

var _ RecordSource = (*Client)(nil)

func NewClient(opts ClientOptions) (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "kbo/http")

	navDelay := opts.NavDelay
	if navDelay == 0 {
		navDelay = DefaultNavDelay
	}

	return &Client{
		http:     client,
		navDelay: navDelay,
	}, nil
}

func (c *Client) wait(ctx context.Context) error {
	select {
	case <-time.After(c.navDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func parseDocument(res *resty.Response) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// formState collects the hidden WebForms fields (__VIEWSTATE and
// friends) that must be echoed back on every postback.
func formState(doc *goquery.Document) map[string]string {
	state := map[string]string{}
	doc.Find("input[type=hidden]").Each(func(_ int, input *goquery.Selection) {
		name := input.AttrOr("name", "")
		if name == "" {
			return
		}
		state[name] = input.AttrOr("value", "")
	})
	return state
}

func (c *Client) get(ctx context.Context, pageUrl string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageUrl, err)
	}
	return parseDocument(res)
}

func (c *Client) postBack(ctx context.Context, pageUrl string, state map[string]string, overrides map[string]string) (*goquery.Document, error) {
	form := map[string]string{}
	for k, v := range state {
		form[k] = v
	}
	for k, v := range overrides {
		form[k] = v
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(pageUrl)
	if err != nil {
		return nil, fmt.Errorf("posting back to %s: %w", pageUrl, err)
	}
	return parseDocument(res)
}

// applyFilters loads the record page and selects the season then the
// team, returning the filtered first results page.
func (c *Client) applyFilters(ctx context.Context, pageUrl string, season int, team string) (*goquery.Document, error) {
	doc, err := c.get(ctx, pageUrl)
	if err != nil {
		return nil, err
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	doc, err = c.postBack(ctx, pageUrl, formState(doc), map[string]string{
		"__EVENTTARGET": fieldSeason,
		fieldSeason:     fmt.Sprint(season),
	})
	if err != nil {
		return nil, err
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	doc, err = c.postBack(ctx, pageUrl, formState(doc), map[string]string{
		"__EVENTTARGET": fieldTeam,
		fieldSeason:     fmt.Sprint(season),
		fieldTeam:       team,
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// crawlPages walks the pager (pages 2 through 5) after the first page,
// stopping at a missing page link or an empty page, and accumulates
// whatever parse extracts from each page document.
func (c *Client) crawlPages(
	ctx context.Context,
	pageUrl string,
	season int,
	team string,
	firstPage *goquery.Document,
	parse func(doc *goquery.Document) int,
) error {
	if parse(firstPage) == 0 {
		return nil
	}

	doc := firstPage
	for pageNum := 2; pageNum <= maxPages; pageNum++ {
		button := fmt.Sprintf(pagerButton, pageNum)
		if doc.Find(fmt.Sprintf(`a[href*="btnNo%d"]`, pageNum)).Length() == 0 {
			break
		}
		if err := c.wait(ctx); err != nil {
			return err
		}

		next, err := c.postBack(ctx, pageUrl, formState(doc), map[string]string{
			"__EVENTTARGET": button,
			fieldSeason:     fmt.Sprint(season),
			fieldTeam:       team,
		})
		if err != nil {
			return err
		}
		if parse(next) == 0 {
			break
		}
		doc = next
	}
	return nil
}

// FetchHitters collects the hitter records of one team for one season.
// Rows belonging to other teams (the site sometimes leaks the previous
// filter state for a beat) are dropped.
func (c *Client) FetchHitters(ctx context.Context, season int, team string) ([]stats.HitterSeasonRecord, error) {
	ctx, span := tracer.Start(ctx, "FetchHitters")
	defer span.End()
	span.SetAttributes(attribute.Int("season", season), attribute.String("team", team))

	doc, err := c.applyFilters(ctx, HitterRecordURL, season, team)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to apply filters")
		return nil, err
	}

	var records []stats.HitterSeasonRecord
	err = c.crawlPages(ctx, HitterRecordURL, season, team, doc, func(doc *goquery.Document) int {
		page := parseHitterRows(doc, season)
		records = append(records, page...)
		return len(page)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to crawl pages")
		return nil, err
	}

	records = filterHittersByTeam(records, team)
	slog.InfoContext(ctx, "collected hitters", "season", season, "team", team, "count", len(records))
	return records, nil
}

// FetchPitchers collects the pitcher records of one team for one season.
func (c *Client) FetchPitchers(ctx context.Context, season int, team string) ([]stats.PitcherSeasonRecord, error) {
	ctx, span := tracer.Start(ctx, "FetchPitchers")
	defer span.End()
	span.SetAttributes(attribute.Int("season", season), attribute.String("team", team))

	doc, err := c.applyFilters(ctx, PitcherRecordURL, season, team)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to apply filters")
		return nil, err
	}

	var records []stats.PitcherSeasonRecord
	err = c.crawlPages(ctx, PitcherRecordURL, season, team, doc, func(doc *goquery.Document) int {
		page := parsePitcherRows(doc, season)
		records = append(records, page...)
		return len(page)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to crawl pages")
		return nil, err
	}

	records = filterPitchersByTeam(records, team)
	slog.InfoContext(ctx, "collected pitchers", "season", season, "team", team, "count", len(records))
	return records, nil
}
