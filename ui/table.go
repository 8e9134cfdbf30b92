package ui

import (
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/shaddyshad/p2p-chat/domain"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func RenderGroups(w io.Writer, groups []domain.Group) {
	table := newTable(w, "Name", "Creator", "Created", "ID")
	table.AppendBulk(lo.Map(groups, func(g domain.Group, _ int) []string {
		return []string{g.Name, short(g.Creator), g.CreatedAt.Local().Format(time.DateTime), g.ID.String()}
	}))
	table.Render()
}

func RenderMessages(w io.Writer, messages []domain.Message, censor Censor) {
	table := newTable(w, "Topic", "Source", "At", "Message", "Reply to", "ID")
	table.AppendBulk(lo.Map(messages, func(m domain.Message, _ int) []string {
		body := m.Body
		if censor != nil {
			body, _ = censor.Censor(body)
		}
		reply := ""
		if m.ReplyID != nil {
			reply = m.ReplyID.String()
		}
		return []string{m.GroupName, short(m.Source), m.Timestamp.Local().Format(time.TimeOnly), body, reply, m.ID.String()}
	}))
	table.Render()
}

// RenderList prints a single column table, used for peers, members and addresses.
func RenderList(w io.Writer, title string, items []string) {
	table := newTable(w, title)
	table.AppendBulk(lo.Map(items, func(s string, _ int) []string { return []string{s} }))
	table.Render()
}
