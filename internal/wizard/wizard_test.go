package wizard

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ricettario/internal/catalog"
	"ricettario/internal/remote"
	"ricettario/internal/storage"
)

type fakeBackend struct {
	pingErr      error
	exists       bool
	existsErr    error
	provisionErr error

	pings      int
	checks     int
	provisions int
	closed     bool
}

func (f *fakeBackend) Ping(ctx context.Context) error {
	f.pings++
	return f.pingErr
}

func (f *fakeBackend) TableExists(ctx context.Context, table string) (bool, error) {
	f.checks++
	return f.exists, f.existsErr
}

func (f *fakeBackend) ProvisionSchema(ctx context.Context) error {
	f.provisions++
	return f.provisionErr
}

func (f *fakeBackend) Close() error {
	f.closed = true
	return nil
}

func newFixture(t *testing.T, backend *fakeBackend) (*catalog.Repository, *Wizard) {
	t.Helper()
	repo := catalog.NewRepository(storage.NewMemStore())
	w := New(repo, func(url, key string) (remote.Backend, error) {
		return backend, nil
	})
	return repo, w
}

// drives the wizard through a successful connectivity test
func connect(t *testing.T, w *Wizard) {
	t.Helper()
	require.Equal(t, StateIntro, w.Open())
	w.Proceed()
	w.SetCredentials("https://abc.supabase.co", "anon-key")
	test, ok := w.StartConnectionTest()
	require.True(t, ok)
	w.ApplyConnectionTest(w.RunConnectionTest(t.Context(), test))
	require.NoError(t, w.Err())
	require.Equal(t, StateSchemaCheck, w.State())
}

func runSchemaCheck(t *testing.T, w *Wizard) {
	t.Helper()
	chk, ok := w.StartSchemaCheck()
	require.True(t, ok)
	w.ApplySchemaCheck(w.RunSchemaCheck(t.Context(), chk))
}

func TestHappyPathExistingTableNeverProvisions(t *testing.T) {
	backend := &fakeBackend{exists: true}
	repo, w := newFixture(t, backend)

	connect(t, w)
	runSchemaCheck(t, w)

	require.Equal(t, StateConnected, w.State())
	require.Zero(t, backend.provisions)

	cfg := repo.LoadSettings().Remote
	require.NotNil(t, cfg)
	require.True(t, cfg.Connected)
	require.Equal(t, "https://abc.supabase.co", cfg.URL)
	require.Equal(t, "anon-key", cfg.AnonKey)
}

func TestMissingTableProvisionsToConnected(t *testing.T) {
	backend := &fakeBackend{exists: false}
	_, w := newFixture(t, backend)

	connect(t, w)
	runSchemaCheck(t, w)
	require.Equal(t, StateSchemaCheck, w.State())
	require.True(t, w.CanProvision())

	p, ok := w.StartProvision()
	require.True(t, ok)
	w.ApplyProvision(w.RunProvision(t.Context(), p))

	require.Equal(t, StateConnected, w.State())
	require.Equal(t, 1, backend.provisions)
	require.Equal(t, 1, backend.checks, "provisioning success is trusted without a second check")
}

func TestProvisionFailureStaysInSchemaCheck(t *testing.T) {
	backend := &fakeBackend{exists: false, provisionErr: remote.ErrRPCUnavailable}
	_, w := newFixture(t, backend)

	connect(t, w)
	runSchemaCheck(t, w)

	p, ok := w.StartProvision()
	require.True(t, ok)
	w.ApplyProvision(w.RunProvision(t.Context(), p))

	require.Equal(t, StateSchemaCheck, w.State())
	require.ErrorIs(t, w.Err(), remote.ErrRPCUnavailable)
	require.False(t, w.TableExists())
	require.True(t, w.CanProvision(), "retry stays available")
}

func TestConnectionFailureStaysInCredentialsWithoutMutatingSettings(t *testing.T) {
	backend := &fakeBackend{pingErr: remote.ErrUnreachable}
	repo, w := newFixture(t, backend)

	w.Open()
	w.Proceed()
	w.SetCredentials("https://abc.supabase.co", "anon-key")
	test, ok := w.StartConnectionTest()
	require.True(t, ok)
	w.ApplyConnectionTest(w.RunConnectionTest(t.Context(), test))

	require.Equal(t, StateCredentials, w.State())
	require.ErrorIs(t, w.Err(), remote.ErrUnreachable)
	require.Nil(t, repo.LoadSettings().Remote)
	require.True(t, backend.closed)
}

func TestStartConnectionTestRequiresBothFields(t *testing.T) {
	_, w := newFixture(t, &fakeBackend{})
	w.Open()
	w.Proceed()

	w.SetCredentials("https://abc.supabase.co", "")
	_, ok := w.StartConnectionTest()
	require.False(t, ok)

	w.SetCredentials("", "anon-key")
	_, ok = w.StartConnectionTest()
	require.False(t, ok)
}

func TestFailedCheckDoesNotOfferProvisioning(t *testing.T) {
	backend := &fakeBackend{existsErr: errors.New("permission denied")}
	_, w := newFixture(t, backend)

	connect(t, w)
	runSchemaCheck(t, w)

	require.Equal(t, StateSchemaCheck, w.State())
	require.Error(t, w.Err())
	require.False(t, w.TableKnown())
	require.False(t, w.CanProvision())
}

func TestDisconnectResetsStoredConfigAndReopenStartsAtIntro(t *testing.T) {
	backend := &fakeBackend{exists: true}
	repo, w := newFixture(t, backend)

	connect(t, w)
	runSchemaCheck(t, w)
	require.Equal(t, StateConnected, w.State())

	require.NoError(t, w.Disconnect())
	cfg := repo.LoadSettings().Remote
	require.NotNil(t, cfg)
	require.Equal(t, catalog.RemoteConfig{URL: "", AnonKey: "", Connected: false}, *cfg)
	require.True(t, backend.closed)

	require.Equal(t, StateIntro, w.Open())
	w.Proceed()
	require.Equal(t, StateCredentials, w.State())
	require.Empty(t, w.URL())
	require.Empty(t, w.AnonKey())
}

func TestOpenShortCircuitsToConnectedFromStoredConfig(t *testing.T) {
	backend := &fakeBackend{}
	repo, w := newFixture(t, backend)
	_, err := repo.UpdateSettings(catalog.SettingsPatch{
		Remote: &catalog.RemoteConfig{URL: "https://abc.supabase.co", AnonKey: "anon-key", Connected: true},
	})
	require.NoError(t, err)

	require.Equal(t, StateConnected, w.Open())
	require.Zero(t, backend.pings, "reachability is not re-verified on reopen")
}

func TestBusyGuardRefusesOverlappingCalls(t *testing.T) {
	_, w := newFixture(t, &fakeBackend{})
	w.Open()
	w.Proceed()
	w.SetCredentials("https://abc.supabase.co", "anon-key")

	_, ok := w.StartConnectionTest()
	require.True(t, ok)
	_, ok = w.StartConnectionTest()
	require.False(t, ok, "second start while busy must be refused")
}

func TestStaleResultIsDropped(t *testing.T) {
	backend := &fakeBackend{}
	repo, w := newFixture(t, backend)
	w.Open()
	w.Proceed()
	w.SetCredentials("https://abc.supabase.co", "anon-key")

	test, ok := w.StartConnectionTest()
	require.True(t, ok)
	res := w.RunConnectionTest(t.Context(), test)

	// wizard closed before the response lands
	w.Close()
	w.ApplyConnectionTest(res)

	require.Nil(t, repo.LoadSettings().Remote)
	require.True(t, backend.closed, "late backend handle is released")
	require.NotEqual(t, StateSchemaCheck, w.State())
}

func TestProvisionGuardedUntilExplicitFalse(t *testing.T) {
	backend := &fakeBackend{exists: false}
	_, w := newFixture(t, backend)
	connect(t, w)

	// check started but result not yet applied: provisioning stays hidden
	_, ok := w.StartSchemaCheck()
	require.True(t, ok)
	require.False(t, w.CanProvision())
	_, ok = w.StartProvision()
	require.False(t, ok)
}
