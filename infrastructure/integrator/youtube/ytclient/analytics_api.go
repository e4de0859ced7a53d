package ytclient

import (
	"context"

	"github.com/pkg/errors"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
)

// QueryReport executa reports.query no canal autenticado e devolve a tabela crua.
func (c *YouTubeClient) QueryReport(ctx context.Context, query ytdomain.ReportQuery) (*ytdomain.ReportTable, error) {
	call := c.analytics.Reports.Query().
		Ids(ytdomain.MineChannelIDs).
		StartDate(query.StartDate).
		EndDate(query.EndDate).
		Dimensions(string(query.Dimension)).
		Metrics(query.MetricList()).
		Context(ctx)

	if filters := query.Filters(); filters != "" {
		call = call.Filters(filters)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, errors.Wrap(err, "reports.query")
	}

	table := &ytdomain.ReportTable{
		Headers: make([]string, 0, len(resp.ColumnHeaders)),
		Rows:    resp.Rows,
	}

	for _, header := range resp.ColumnHeaders {
		if header == nil {
			table.Headers = append(table.Headers, "")
			continue
		}
		table.Headers = append(table.Headers, header.Name)
	}

	return table, nil
}
