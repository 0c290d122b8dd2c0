package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "barbershop-booking")

	m.IncAppointmentCreated()
	m.IncAppointmentCreated()
	m.IncSlotConflict()
	m.IncAppointmentStatus("confirmed")
	m.ObserveDBQuery("select", 0.01, nil)
	m.ObserveDBQuery("select", 0.02, errors.New("boom"))
	m.ObserveHTTPRequest("GET", "/api/v1/services", "200", 0.005)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AppointmentsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsStatus.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/services", "200")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncAppointmentCreated()
		m.IncSlotConflict()
		m.IncRateLimited()
		m.IncSerializationRetry()
		m.ObserveDBQuery("insert", 1, nil)
		m.SetDBPoolStats("svc", 1, 1, 0)
	})
}
