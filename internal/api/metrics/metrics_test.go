package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/session"
)

func value(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestLoginResult(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{domain.ErrInvalidCredentials, "invalid_credentials"},
		{session.ErrMissingCredentials, "invalid_credentials"},
		{session.ErrLoginSuperseded, "superseded"},
		{fmt.Errorf("login: %w", errors.New("dial tcp: refused")), "error"},
	}
	for _, tc := range cases {
		if got := LoginResult(tc.err); got != tc.want {
			t.Errorf("LoginResult(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestSessionObserver_Counts(t *testing.T) {
	obs := SessionObserver{}

	before := value(t, SessionHydrationsTotal.WithLabelValues("corrupt"))
	obs.Hydrated(session.HydrateCorrupt)
	if got := value(t, SessionHydrationsTotal.WithLabelValues("corrupt")); got != before+1 {
		t.Fatalf("expected corrupt hydrations to increase by 1, got %v -> %v", before, got)
	}

	beforeLogout := value(t, SessionLogoutsTotal)
	obs.LoggedOut()
	if got := value(t, SessionLogoutsTotal); got != beforeLogout+1 {
		t.Fatalf("expected logouts to increase by 1")
	}

	beforeLogin := value(t, SessionLoginsTotal.WithLabelValues("success"))
	obs.LoginFinished(nil)
	if got := value(t, SessionLoginsTotal.WithLabelValues("success")); got != beforeLogin+1 {
		t.Fatalf("expected successful logins to increase by 1")
	}
}
