// Package wizard drives the guided backend provisioning flow: credential
// capture, connectivity test, schema inspection, schema creation, connected
// state. It owns no settings copy of its own; remote config is read and
// written through the catalog repository.
package wizard

import (
	"context"
	"time"

	"ricettario/internal/catalog"
	"ricettario/internal/remote"
)

type State int

const (
	StateIntro State = iota
	StateCredentials
	StateSchemaCheck
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateCredentials:
		return "credentials"
	case StateSchemaCheck:
		return "schema_check"
	case StateConnected:
		return "connected"
	}
	return "unknown"
}

// Dialer constructs a backend from a credential pair without dialing.
type Dialer func(projectURL, anonKey string) (remote.Backend, error)

// Wizard is the provisioning state machine. Remote calls are split into
// Start/Run/Apply triples so the UI can run the blocking part off the update
// loop: Start guards re-entrancy and snapshots inputs, Run performs the call,
// Apply folds the result back in. Results carry the generation they were
// started under; a stale generation is dropped, which is how a superseded or
// closed session discards late-arriving responses.
type Wizard struct {
	repo    *catalog.Repository
	dial    Dialer
	timeout time.Duration

	state   State
	url     string
	anonKey string
	backend remote.Backend
	busy    bool
	gen     int
	err     error

	tableKnown  bool
	tableExists bool
}

func New(repo *catalog.Repository, dial Dialer) *Wizard {
	return &Wizard{repo: repo, dial: dial, timeout: 10 * time.Second}
}

func (w *Wizard) State() State      { return w.state }
func (w *Wizard) Busy() bool        { return w.busy }
func (w *Wizard) Err() error        { return w.err }
func (w *Wizard) URL() string       { return w.url }
func (w *Wizard) AnonKey() string   { return w.anonKey }
func (w *Wizard) TableKnown() bool  { return w.tableKnown }
func (w *Wizard) TableExists() bool { return w.tableKnown && w.tableExists }

// CallContext bounds a remote call so a hung network call cannot wedge the
// testing/checking UI state.
func (w *Wizard) CallContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, w.timeout)
}

// Open (re-)enters the wizard from stored settings. A previously persisted
// connected config short-circuits straight to Connected without re-verifying
// reachability; re-verification happens only on explicit disconnect and
// reconnect.
func (w *Wizard) Open() State {
	w.gen++
	w.busy = false
	w.err = nil
	w.tableKnown = false
	w.tableExists = false
	cfg := w.repo.LoadSettings().Remote
	if cfg != nil && cfg.Connected {
		w.url = cfg.URL
		w.anonKey = cfg.AnonKey
		w.state = StateConnected
		return w.state
	}
	w.state = StateIntro
	if cfg != nil {
		w.url = cfg.URL
		w.anonKey = cfg.AnonKey
	} else {
		w.url = ""
		w.anonKey = ""
	}
	return w.state
}

// Close discards any in-flight call result and releases the backend handle.
// Stored settings are untouched.
func (w *Wizard) Close() {
	w.gen++
	w.busy = false
	if w.backend != nil {
		_ = w.backend.Close()
		w.backend = nil
	}
}

// Proceed advances Intro to Credentials.
func (w *Wizard) Proceed() {
	if w.state == StateIntro {
		w.state = StateCredentials
		w.err = nil
	}
}

// SetCredentials updates the working credential pair while on the
// credentials step.
func (w *Wizard) SetCredentials(projectURL, anonKey string) {
	if w.state != StateCredentials || w.busy {
		return
	}
	w.url = projectURL
	w.anonKey = anonKey
}

// ConnTest is a snapshot of a started connectivity test.
type ConnTest struct {
	Gen     int
	URL     string
	AnonKey string
}

// ConnResult is the outcome of a connectivity test.
type ConnResult struct {
	Gen     int
	Backend remote.Backend
	Err     error
}

// StartConnectionTest begins a connectivity test. It refuses to start while
// another call is outstanding or while either field is empty.
func (w *Wizard) StartConnectionTest() (ConnTest, bool) {
	if w.state != StateCredentials || w.busy || w.url == "" || w.anonKey == "" {
		return ConnTest{}, false
	}
	w.busy = true
	w.err = nil
	w.gen++
	return ConnTest{Gen: w.gen, URL: w.url, AnonKey: w.anonKey}, true
}

// RunConnectionTest dials and pings. Safe to call off the update loop; it
// touches no wizard state.
func (w *Wizard) RunConnectionTest(ctx context.Context, t ConnTest) ConnResult {
	backend, err := w.dial(t.URL, t.AnonKey)
	if err != nil {
		return ConnResult{Gen: t.Gen, Err: err}
	}
	if err := backend.Ping(ctx); err != nil {
		_ = backend.Close()
		return ConnResult{Gen: t.Gen, Err: err}
	}
	return ConnResult{Gen: t.Gen, Backend: backend}
}

// ApplyConnectionTest folds a test result back into the machine. On success
// the credential pair is persisted as connected and the wizard moves to the
// schema check; on failure stored settings are not mutated and the wizard
// stays on the credentials step.
func (w *Wizard) ApplyConnectionTest(res ConnResult) {
	if res.Gen != w.gen {
		if res.Backend != nil {
			_ = res.Backend.Close()
		}
		return
	}
	w.busy = false
	if res.Err != nil {
		w.err = res.Err
		return
	}
	if w.backend != nil {
		_ = w.backend.Close()
	}
	w.backend = res.Backend
	_, err := w.repo.UpdateSettings(catalog.SettingsPatch{
		Remote: &catalog.RemoteConfig{URL: w.url, AnonKey: w.anonKey, Connected: true},
	})
	if err != nil {
		w.err = err
		return
	}
	w.state = StateSchemaCheck
	w.tableKnown = false
}

// SchemaCheck is a snapshot of a started schema inspection.
type SchemaCheck struct{ Gen int }

// CheckResult is the outcome of a schema inspection.
type CheckResult struct {
	Gen    int
	Exists bool
	Err    error
}

// StartSchemaCheck begins a schema inspection. Entering the schema-check
// step always re-issues the check; a stale exists result is never trusted.
func (w *Wizard) StartSchemaCheck() (SchemaCheck, bool) {
	if w.state != StateSchemaCheck || w.busy || w.backend == nil {
		return SchemaCheck{}, false
	}
	w.busy = true
	w.err = nil
	w.tableKnown = false
	w.gen++
	return SchemaCheck{Gen: w.gen}, true
}

func (w *Wizard) RunSchemaCheck(ctx context.Context, chk SchemaCheck) CheckResult {
	exists, err := w.backend.TableExists(ctx, remote.RecipesTable)
	return CheckResult{Gen: chk.Gen, Exists: exists, Err: err}
}

// ApplySchemaCheck records the inspection outcome. A confirmed table moves
// straight to Connected; a confirmed absence unlocks provisioning; a failed
// check leaves existence undetermined so provisioning stays unavailable.
func (w *Wizard) ApplySchemaCheck(res CheckResult) {
	if res.Gen != w.gen {
		return
	}
	w.busy = false
	if res.Err != nil {
		w.err = res.Err
		return
	}
	w.tableKnown = true
	w.tableExists = res.Exists
	if res.Exists {
		w.state = StateConnected
	}
}

// Provision is a snapshot of a started schema creation.
type Provision struct{ Gen int }

// ProvisionResult is the outcome of a schema creation.
type ProvisionResult struct {
	Gen int
	Err error
}

// CanProvision reports whether the provisioning action is offered: only
// after the check explicitly returned false, never while pending or
// undetermined.
func (w *Wizard) CanProvision() bool {
	return w.state == StateSchemaCheck && !w.busy && w.tableKnown && !w.tableExists
}

// StartProvision begins schema creation. The busy flag doubles as the
// double-invocation guard.
func (w *Wizard) StartProvision() (Provision, bool) {
	if !w.CanProvision() || w.backend == nil {
		return Provision{}, false
	}
	w.busy = true
	w.err = nil
	w.gen++
	return Provision{Gen: w.gen}, true
}

func (w *Wizard) RunProvision(ctx context.Context, p Provision) ProvisionResult {
	return ProvisionResult{Gen: p.Gen, Err: w.backend.ProvisionSchema(ctx)}
}

// ApplyProvision trusts the provisioning call's own success signal and moves
// to Connected without a second schema check. On failure the wizard stays on
// the schema-check step with existence still false.
func (w *Wizard) ApplyProvision(res ProvisionResult) {
	if res.Gen != w.gen {
		return
	}
	w.busy = false
	if res.Err != nil {
		w.err = res.Err
		return
	}
	w.tableKnown = true
	w.tableExists = true
	w.state = StateConnected
}

// Disconnect unconditionally resets the stored remote config to its empty
// disconnected defaults and returns to Intro. Locally cached data is not
// touched.
func (w *Wizard) Disconnect() error {
	w.gen++
	w.busy = false
	w.err = nil
	w.tableKnown = false
	w.tableExists = false
	if w.backend != nil {
		_ = w.backend.Close()
		w.backend = nil
	}
	w.url = ""
	w.anonKey = ""
	w.state = StateIntro
	_, err := w.repo.UpdateSettings(catalog.SettingsPatch{
		Remote: &catalog.RemoteConfig{},
	})
	return err
}
