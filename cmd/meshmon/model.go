package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rf24go/rf24mesh"
	"github.com/rf24go/rf24mesh/meshsim"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

// model is the bubbletea model for the live mesh dashboard: it owns the
// simulator, drives its traffic generator and poll loop on every tick, and
// renders a routing table snapshot.
type model struct {
	sim      *meshsim.Simulator
	logger   *slog.Logger
	refresh  time.Duration
	table    table.Model
	messages int
}

func newModel(sim *meshsim.Simulator, logger *slog.Logger, refresh time.Duration) model {
	columns := []table.Column{
		{Title: "Node", Width: 8},
		{Title: "Depth", Width: 6},
		{Title: "Parent", Width: 8},
		{Title: "OK", Width: 8},
		{Title: "Fails", Width: 8},
		{Title: "Queued", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(len(sim.Addresses())+1),
	)

	return model{sim: sim, logger: logger, refresh: refresh, table: t}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tickMsg:
		m.injectTraffic()
		m.sim.PollAll()
		m.table.SetRows(rowsFor(m.sim.Stats()))
		return m, tickCmd(m.refresh)
	}

	return m, nil
}

func (m model) View() string {
	header := headerStyle.Render("rf24mesh live simulation")
	footer := dimStyle.Render(fmt.Sprintf("messages sent: %d  ·  q to quit", m.messages))
	return header + "\n\n" + m.table.View() + "\n\n" + footer + "\n"
}

// injectTraffic periodically has a random node send to another random node,
// so the dashboard has something to show: counters moving, queues filling.
// It runs synchronously on the same tick-driven goroutine as PollAll — never
// on a spawned goroutine — so a node's Send and its own Poll are never
// invoked concurrently, honoring the single-owner contract each Network
// assumes.
func (m *model) injectTraffic() {
	addrs := m.sim.Addresses()
	if len(addrs) < 2 {
		return
	}

	from := addrs[rand.Intn(len(addrs))]
	to := addrs[rand.Intn(len(addrs))]
	if from == to {
		return
	}

	node := m.sim.Node(from)
	if node == nil {
		return
	}

	header := node.NewHeader(to, 1)
	payload := []byte(fmt.Sprintf("ping-%d", m.messages))
	m.sim.SendFrom(from, header, payload)
	m.messages++
	m.logger.Debug("sent", "from", from, "to", to, "id", header.ID)
}

func rowsFor(stats []meshsim.NodeStats) []table.Row {
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, table.Row{
			rf24mesh.Describe(s.Address),
			fmt.Sprintf("%d", s.Depth),
			rf24mesh.Describe(s.ParentNode),
			fmt.Sprintf("%d", s.OK),
			fmt.Sprintf("%d", s.Fails),
			fmt.Sprintf("%d", s.QueueLen),
		})
	}
	return rows
}
