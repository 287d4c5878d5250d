package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Role change results
const (
	ResultAdded   = "added"
	ResultRemoved = "removed"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Metrics - Prometheus collectors for the bot
type Metrics struct {
	RoleChanges   *prometheus.CounterVec
	Registrations *prometheus.CounterVec
	Commands      *prometheus.CounterVec
}

// New - Register collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RoleChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "botto_reaction_role_changes_total",
			Help: "Reaction role events by result",
		}, []string{"result"}),
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "botto_registrations_total",
			Help: "Registration form submissions by role grant status",
		}, []string{"status"}),
		Commands: f.NewCounterVec(prometheus.CounterOpts{
			Name: "botto_commands_total",
			Help: "Slash command invocations by name",
		}, []string{"command"}),
	}
}

// RoleChange - Count one reaction role event
func (m *Metrics) RoleChange(result string) {
	m.RoleChanges.WithLabelValues(result).Inc()
}

// Registration - Count one form submission
func (m *Metrics) Registration(status string) {
	m.Registrations.WithLabelValues(status).Inc()
}

// Command - Count one slash command
func (m *Metrics) Command(name string) {
	m.Commands.WithLabelValues(name).Inc()
}
