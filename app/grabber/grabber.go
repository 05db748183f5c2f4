// Package grabber coordinates one grab run: services, channels and days in
// configured order, entirely sequential.
package grabber

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/brasil-epg/grabber/app/config"
	"github.com/brasil-epg/grabber/app/extract"
	"github.com/brasil-epg/grabber/app/pipeline"
)

// Fetcher executes one blocking request per (service, channel-or-batch,
// day).
type Fetcher interface {
	Fetch(ctx context.Context, svc *config.Service, day int, channelSelector string) (any, error)
}

// Options selects what one run grabs.
type Options struct {
	Days      int
	Services  []string // empty = all configured
	ChannelID string   // grab a single channel only
}

// Grabber accumulates canonical records across services. The only shared
// state is the output list; everything else is per iteration.
type Grabber struct {
	store     *config.Store
	fetcher   Fetcher
	extractor *extract.Extractor
	processor *pipeline.Processor
}

func NewGrabber(store *config.Store, fetcher Fetcher, processor *pipeline.Processor) *Grabber {
	return &Grabber{
		store:     store,
		fetcher:   fetcher,
		extractor: extract.NewExtractor(),
		processor: processor,
	}
}

// Run grabs every requested service and returns the collected records
// sorted by (channel, start time), plus the single-service name hint for
// the output filename. Failures are contained per iteration: a bad service
// descriptor skips that service, a failed (channel, day) fetch skips to the
// next channel. Whatever was collected is always returned.
func (g *Grabber) Run(ctx context.Context, opts Options) ([]*pipeline.Record, string) {
	services := opts.Services
	if len(services) == 0 {
		names, err := g.store.Names()
		if err != nil {
			slog.Error("Failed to list services", "error", err)
			return nil, ""
		}
		services = names
	}

	var records []*pipeline.Record
	var lastService *config.Service

	for _, name := range services {
		svc, err := g.store.Load(name)
		if err != nil {
			slog.Error("Failed to load service configuration", "service", name, "error", err)
			continue
		}
		lastService = svc

		records = append(records, g.grabService(ctx, svc, opts)...)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Channel != records[j].Channel {
			return records[i].Channel < records[j].Channel
		}
		return records[i].Start.SortKey() < records[j].Start.SortKey()
	})

	name := ""
	if len(services) == 1 && lastService != nil {
		name = lastService.Name
	}

	return records, name
}

func (g *Grabber) grabService(ctx context.Context, svc *config.Service, opts Options) []*pipeline.Record {
	// Services flagged no_loop return the whole window in one request, so
	// only the final day offset is fetched.
	var days []int
	if svc.NoLoop {
		days = []int{opts.Days}
	} else {
		for day := 0; day <= opts.Days; day++ {
			days = append(days, day)
		}
	}

	var records []*pipeline.Record

	for _, batch := range g.channelBatches(svc, opts.ChannelID) {
		var raws []extract.RawProgram

		for _, day := range days {
			payload, err := g.fetcher.Fetch(ctx, svc, day, batch.selector)
			if err != nil {
				slog.Error("Fetch failed, skipping channel",
					"service", svc.Name, "channel", batch.name, "day", day, "error", err)
				break
			}

			raws = append(raws, g.extractor.Programs(payload, svc, batch.name)...)
		}

		for _, raw := range raws {
			records = append(records, g.processor.Process(ctx, raw))
		}

		slog.Info("Channel grabbed", "service", svc.Name, "channel", batch.name, "programs", len(raws))
	}

	return records
}

// channelBatch is one request unit: a single channel, or a batched list of
// channel ids for services addressed through a LISTACANAIS placeholder.
type channelBatch struct {
	selector string
	name     string
}

func (g *Grabber) channelBatches(svc *config.Service, channelID string) []channelBatch {
	if channelID != "" {
		return []channelBatch{{selector: channelID}}
	}

	if svc.UseListInURL && strings.Contains(svc.APIURL, "LISTACANAIS") {
		return listBatches(svc)
	}

	if len(svc.Channels) == 0 {
		return []channelBatch{{selector: "0"}}
	}

	batches := make([]channelBatch, 0, len(svc.Channels))
	for _, ch := range svc.Channels {
		batches = append(batches, channelBatch{selector: ch.ID, name: ch.Name})
	}
	return batches
}

func listBatches(svc *config.Service) []channelBatch {
	ids := make([]string, 0, len(svc.Channels))
	for _, ch := range svc.Channels {
		ids = append(ids, ch.ID)
	}

	size := svc.BatchSize
	if size <= 0 || size >= len(ids) {
		return []channelBatch{{selector: strings.Join(ids, ",")}}
	}

	var batches []channelBatch
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, channelBatch{selector: strings.Join(ids[start:end], ",")})
	}
	return batches
}
