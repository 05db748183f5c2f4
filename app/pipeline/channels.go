package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/brasil-epg/grabber/app/sports"
)

// broadcasterHandler pairs a channel predicate with a record transform.
// Handlers run at most once per record: the registry is walked in priority
// order and the first matching predicate wins.
type broadcasterHandler struct {
	name  string
	match func(channel string) bool
	apply func(p *Processor, ctx context.Context, rec *Record)
}

func channelContains(substrings ...string) func(string) bool {
	return func(channel string) bool {
		for _, s := range substrings {
			if strings.Contains(channel, s) {
				return true
			}
		}
		return false
	}
}

var broadcasterHandlers = []broadcasterHandler{
	{name: "local", match: channelContains("local"), apply: (*Processor).handleLocal},
	{name: "4k", match: channelContains("4k"), apply: (*Processor).handle4K},
	{name: "sportv", match: channelContains("sportv", "premiere", "combate", "ge-tv"), apply: (*Processor).handleSporTV},
	{name: "x sports", match: channelContains("x sports"), apply: (*Processor).handleXSports},
	{name: "record", match: channelContains("record sp"), apply: (*Processor).handleRecord},
	{name: "band", match: channelContains("band sp"), apply: (*Processor).handleBand},
	{
		name: "globo",
		match: func(channel string) bool {
			return strings.Contains(channel, "globo") &&
				!strings.Contains(channel, "play") &&
				!strings.Contains(channel, "news")
		},
		apply: (*Processor).handleGlobo,
	},
	{name: "globonews", match: channelContains("globonews", "news"), apply: (*Processor).handleGloboNews},
	{name: "viva", match: channelContains("viva", "multishow"), apply: (*Processor).handleVivaMultishow},
	{name: "sbt", match: channelContains("sbt"), apply: (*Processor).handleSBT},
}

// dispatchChannel selects exactly one broadcaster handler by
// case-insensitive substring on the channel name, first match wins.
func (p *Processor) dispatchChannel(ctx context.Context, rec *Record) {
	channel := strings.ToLower(rec.Channel)
	for _, handler := range broadcasterHandlers {
		if handler.match(channel) {
			handler.apply(p, ctx, rec)
			return
		}
	}
}

var (
	bracketRating = regexp.MustCompile(`\[(\d+\+)\]`)
	bracketStrip  = regexp.MustCompile(`\s*\[\d+\+\]`)
	confrontation = regexp.MustCompile(`^[A-Za-zÀ-ÿ0-9\s]+ x [A-Za-zÀ-ÿ0-9\s]+$`)
	upperVersus   = regexp.MustCompile(`\s+X\s+`)
	globoplayTag  = regexp.MustCompile(`\s?-?\s?Globoplay`)
)

// splitTitleDash splits the title on the first " - " into title/subtitle
// when the subtitle is empty.
func splitTitleDash(rec *Record) {
	if rec.Subtitle == "" && strings.Contains(rec.Title, " - ") {
		parts := strings.SplitN(rec.Title, " - ", 2)
		rec.Title, rec.Subtitle = parts[0], parts[1]
	}
}

// enrichFootball queries the sports lookup for a detected confrontation.
// The football tag is set by the caller before this runs; an unavailable
// lookup degrades the tag to sports, a miss keeps it.
func (p *Processor) enrichFootball(ctx context.Context, rec *Record, enrich func(sports.Match)) {
	match, found, err := p.lookup.FindMatch(ctx, rec.Start.Time, rec.HomeTeam, rec.AwayTeam)
	if errors.Is(err, sports.ErrUnavailable) {
		if rec.Event == EventFootball {
			rec.Event = EventSports
		}
		return
	}
	if err != nil {
		slog.Warn("Sports lookup failed", "channel", rec.Channel, "home", rec.HomeTeam, "away", rec.AwayTeam, "error", err)
		return
	}
	if found {
		enrich(match)
	}
}

// handleLocal moves the bracketed rating out of the description and swaps
// the subtitle into the description slot.
func (p *Processor) handleLocal(_ context.Context, rec *Record) {
	if rec.Description != "" {
		if m := bracketRating.FindStringSubmatch(rec.Description); m != nil {
			rec.Rating = m[1]
			rec.Description = bracketStrip.ReplaceAllString(rec.Description, "")
		}
	}

	rec.Description = rec.Subtitle
	rec.Subtitle = ""
}

// handle4K fixes titles of the form "<confrontation> - <competition>:
// <confrontation>" where the confrontation is repeated verbatim.
func (p *Processor) handle4K(_ context.Context, rec *Record) {
	before, after, ok := strings.Cut(rec.Title, ":")
	if !ok {
		return
	}

	matchPart, competition, ok := strings.Cut(strings.TrimSpace(before), " - ")
	if !ok {
		return
	}

	if strings.EqualFold(strings.TrimSpace(matchPart), strings.TrimSpace(after)) {
		rec.Title = strings.TrimSpace(competition)
		rec.Subtitle = strings.TrimSpace(matchPart)
		rec.Live = LiveTrue()
	}
}

func (p *Processor) handleSporTV(ctx context.Context, rec *Record) {
	rec.Genre = "sports (general)"

	splitTitleDash(rec)

	if rec.Subtitle != "" {
		rec.Subtitle = upperVersus.ReplaceAllString(rec.Subtitle, " x ")
		rec.Subtitle = globoplayTag.ReplaceAllString(rec.Subtitle, "")
	}

	if rec.Subtitle == "" {
		return
	}

	if !confrontation.MatchString(rec.Subtitle) {
		rec.Event = EventSports
		return
	}

	rec.Event = EventFootball
	teams := strings.SplitN(rec.Subtitle, " x ", 2)
	rec.HomeTeam, rec.AwayTeam = teams[0], teams[1]

	p.enrichFootball(ctx, rec, func(m sports.Match) {
		rec.Phase = m.Phase
	})
}

func (p *Processor) handleXSports(ctx context.Context, rec *Record) {
	splitTitleDash(rec)

	if rec.Subtitle == "" {
		return
	}

	if !confrontation.MatchString(rec.Subtitle) {
		rec.Event = EventSports
		return
	}

	rec.Event = EventFootball
	teams := strings.SplitN(rec.Subtitle, " x ", 2)
	rec.HomeTeam, rec.AwayTeam = teams[0], teams[1]

	p.enrichFootball(ctx, rec, func(m sports.Match) {
		rec.Competition = m.Competition
		rec.HomeTeam = m.HomeTeam
		rec.AwayTeam = m.AwayTeam
		rec.Phase = m.Phase
		rec.Stadium = m.Stadium
		rec.Live = LiveTrue()
	})
}

var (
	iurdPrograms = []string{
		"Inteligência e Fé",
		"Palavra Amiga",
		"Programa do Templo",
	}
	universalPrefix = regexp.MustCompile(`^\s*Programação Universal\s*-\s*IURD\s?-?\s?`)
)

// handleRecord rewrites the fixed religious strands into a canonical title
// and enriches the championship matches the network airs.
func (p *Processor) handleRecord(ctx context.Context, rec *Record) {
	for _, program := range iurdPrograms {
		if strings.Contains(rec.Title, program) {
			rec.Subtitle = program
			rec.Title = "Programação IURD"
			break
		}
	}

	if strings.Contains(rec.Title, "Programação Universal - IURD") {
		rec.Subtitle = universalPrefix.ReplaceAllString(rec.Title, "")
		rec.Title = "Programação IURD"
		return
	}

	if strings.Contains(rec.Title, "Campeonato Brasileiro") || strings.Contains(rec.Title, "Campeonato Paulista") {
		_, tail, ok := strings.Cut(rec.Title, " - ")
		if !ok {
			return
		}
		teams := strings.SplitN(tail, " x ", 2)
		if len(teams) != 2 {
			return
		}

		rec.HomeTeam, rec.AwayTeam = teams[0], teams[1]
		p.enrichFootball(ctx, rec, func(m sports.Match) {
			rec.Competition = m.Competition
			rec.HomeTeam = m.HomeTeam
			rec.AwayTeam = m.AwayTeam
			rec.Phase = m.Phase
			rec.Stadium = m.Stadium
			rec.Live = LiveTrue()
			rec.Event = EventFootball
		})
	}
}

var (
	bandStrands = regexp.MustCompile(`(?i)^(INFOMERCIAL|RELIGIOSO)\s*-\s*(.+)$`)
	bandShows   = []string{
		"Igreja Cristo Para As Nações",
		"Igreja Universal do Reino de Deus",
		"Show da Fé",
		"Oração do dia com Profeta Vinícius Iracet",
	}
)

func (p *Processor) handleBand(_ context.Context, rec *Record) {
	if m := bandStrands.FindStringSubmatch(rec.Title); m != nil {
		rec.Title = strings.ToUpper(m[1])
		rec.Subtitle = strings.TrimSpace(m[2])
		return
	}

	for _, show := range bandShows {
		if strings.Contains(rec.Title, show) {
			rec.Subtitle = rec.Title
			rec.Title = "RELIGIOSO"
			return
		}
	}

	rec.Subtitle = ""
}

var (
	globoMovieBlocks = []string{
		"corujão i",
		"corujão ii",
		"corujão iii",
		"corujão vi",
		"temperatura máxima",
		"campeões de bilheteria",
		"domingo maior",
		"sessão da tarde",
		"tela quente",
		"cinemaço",
		"cinema especial",
		"festival de sucessos",
		"sessão brasil",
		"sessão de natal",
		"supercine",
	}
	globoSeriesBlocks = []string{
		"Vale a Pena Ver de Novo",
		"Vale A Pena Ver de Novo",
		"Vale a Pena Ver De Novo",
		"Vale A Pena",
		"Sessão Globoplay",
	}
)

func (p *Processor) handleGlobo(ctx context.Context, rec *Record) {
	if (rec.Subtitle == "" || strings.Contains(rec.Title, rec.Subtitle)) && strings.Contains(rec.Title, " - ") {
		parts := strings.SplitN(rec.Title, " - ", 2)
		rec.Title, rec.Subtitle = parts[0], parts[1]
	}

	rewritten := false
	for _, block := range globoSeriesBlocks {
		if !strings.Contains(rec.Title, block) {
			continue
		}
		rec.Event = EventSeries

		strandTail := regexp.MustCompile(regexp.QuoteMeta(block) + `\s*-\s*(.*)`)
		if m := strandTail.FindStringSubmatch(rec.Title); m != nil {
			rec.Subtitle = m[1]
			rec.Title = block
			rewritten = true
		}
		break
	}

	if !rewritten && isMovieBlock(rec.Title) {
		rec.Event = EventMovie
		return
	}

	if strings.Contains(rec.Title, "Edição Especial") {
		rec.Event = EventEgrem
	}

	if rec.Title == "Futebol" {
		teams := strings.SplitN(rec.Subtitle, " x ", 2)
		if len(teams) != 2 {
			return
		}

		rec.HomeTeam, rec.AwayTeam = teams[0], teams[1]
		p.enrichFootball(ctx, rec, func(m sports.Match) {
			rec.Competition = m.Competition
			rec.HomeTeam = m.HomeTeam
			rec.AwayTeam = m.AwayTeam
			rec.Phase = m.Phase
			rec.Stadium = m.Stadium
			rec.Live = LiveTrue()
			rec.Event = EventFootball
		})
	}
}

func isMovieBlock(title string) bool {
	lower := strings.ToLower(strings.TrimSpace(title))
	for _, block := range globoMovieBlocks {
		if lower == block {
			return true
		}
	}
	return false
}

var newsEdition = regexp.MustCompile(`(?i)Edição Das (\d+)h`)

func (p *Processor) handleGloboNews(_ context.Context, rec *Record) {
	rec.Genre = "news/current affairs (general)"

	if strings.Contains(rec.Title, "Edição Das") {
		if m := newsEdition.FindStringSubmatch(rec.Title); m != nil {
			hour, _ := strconv.Atoi(m[1])
			rec.Title = fmt.Sprintf("Jornal GloboNews - Edição das %02dh", hour)
			rec.Subtitle = ""
		}
	}
}

var novelaChapter = regexp.MustCompile(`Capítulo\s+(\d+)`)

func (p *Processor) handleVivaMultishow(_ context.Context, rec *Record) {
	rec.Title = strings.ReplaceAll(rec.Title, "Tvz", "TVZ")

	if strings.Contains(rec.Subtitle, "Capítulo") {
		if m := novelaChapter.FindStringSubmatch(rec.Subtitle); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				episode := n - 1
				rec.Episode = &episode
			}
			rec.Subtitle = novelaChapter.ReplaceAllString(rec.Subtitle, "")
		}
	}
}

func (p *Processor) handleSBT(ctx context.Context, rec *Record) {
	if !strings.Contains(rec.Title, "Sul-americana") && !strings.Contains(rec.Title, "Champions League") {
		return
	}

	_, tail, ok := strings.Cut(rec.Subtitle, " - ")
	if !ok {
		return
	}
	teams := strings.SplitN(tail, " x ", 2)
	if len(teams) != 2 {
		return
	}

	rec.HomeTeam, rec.AwayTeam = teams[0], teams[1]
	p.enrichFootball(ctx, rec, func(m sports.Match) {
		rec.Competition = m.Competition
		rec.HomeTeam = m.HomeTeam
		rec.AwayTeam = m.AwayTeam
		rec.Phase = m.Phase
		rec.Stadium = m.Stadium
		rec.Live = LiveTrue()
		rec.Event = EventFootball
	})
}
