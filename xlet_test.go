package extern

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recOutlet records everything sent through it, standing in for the host's
// native outlet.
type recOutlet struct {
	lk   sync.Mutex
	sent []string
}

func (r *recOutlet) record(s string) {
	r.lk.Lock()
	r.sent = append(r.sent, s)
	r.lk.Unlock()
}

func (r *recOutlet) Sent() []string {
	r.lk.Lock()
	defer r.lk.Unlock()
	return append([]string(nil), r.sent...)
}

func (r *recOutlet) Bang()            { r.record("bang") }
func (r *recOutlet) Float(v float64)  { r.record(fmt.Sprintf("float %g", v)) }
func (r *recOutlet) Int(v int)        { r.record(fmt.Sprintf("int %d", v)) }
func (r *recOutlet) Symbol(s Symbol)  { r.record("symbol " + s.String()) }
func (r *recOutlet) List(a []Atom)    { r.record(fmt.Sprintf("list %d", len(a))) }
func (r *recOutlet) Anything(s Symbol, a []Atom) {
	r.record(fmt.Sprintf("any %s %d", s, len(a)))
}

// recBinder materializes recOutlets and remembers what was declared.
type recBinder struct {
	inlets  []XletType
	outlets []*recOutlet
}

func (b *recBinder) BindInlet(ix int, tp XletType, _ string) error {
	b.inlets = append(b.inlets, tp)
	return nil
}

func (b *recBinder) BindOutlet(ix int, tp XletType, _ string) (Outlet, error) {
	out := &recOutlet{}
	b.outlets = append(b.outlets, out)
	return out, nil
}

// mockBinder lets a test refuse slot creation.
type mockBinder struct {
	m mock.Mock
}

func (b *mockBinder) BindInlet(ix int, tp XletType, desc string) error {
	return b.m.Called(ix, tp, desc).Error(0)
}

func (b *mockBinder) BindOutlet(ix int, tp XletType, desc string) (Outlet, error) {
	args := b.m.Called(ix, tp, desc)
	out, _ := args.Get(0).(Outlet)
	return out, args.Error(1)
}

func newTestObject(t *testing.T, opts ...Option) *Object {
	t.Helper()
	o, err := New(opts...)
	require.NoError(t, err)
	return o
}

func TestXlet_CountsMatchDeclarations(t *testing.T) {
	o := newTestObject(t)
	require.NoError(t, o.AddInAnything(1))
	require.NoError(t, o.AddInFloat(2))
	require.NoError(t, o.AddInSignal(1))
	require.NoError(t, o.AddOutFloat(1))
	require.NoError(t, o.AddOutBang(1))
	require.NoError(t, o.AddOutSignal(2))

	b := &recBinder{}
	require.NoError(t, o.SetupInOut(b))

	require.Equal(t, 4, o.CntIn())
	require.Equal(t, 4, o.CntOut())
	require.Equal(t, 1, o.CntInSig())
	require.Equal(t, 2, o.CntOutSig())

	require.Equal(t, []XletType{XletAny, XletFloat, XletFloat, XletSignal}, b.inlets)
	require.NotNil(t, o.GetOut(0))
	require.Nil(t, o.GetOut(4))
	require.Nil(t, o.GetOut(-1))
}

func TestXlet_ZeroDeclarations(t *testing.T) {
	o := newTestObject(t)
	require.NoError(t, o.SetupInOut(&recBinder{}))
	require.Equal(t, 0, o.CntIn())
	require.Equal(t, 0, o.CntOut())
}

func TestXlet_FrozenAfterSetup(t *testing.T) {
	o := newTestObject(t)
	require.NoError(t, o.AddInFloat(1))
	require.NoError(t, o.SetupInOut(&recBinder{}))

	require.ErrorIs(t, o.AddInFloat(1), ErrFrozen)
	require.ErrorIs(t, o.AddOutBang(1), ErrFrozen)
	require.ErrorIs(t, o.SetupInOut(&recBinder{}), ErrFrozen)
	require.ErrorIs(t, o.AddFloat(0, func(float64) bool { return true }), ErrFrozen)
	require.ErrorIs(t, o.SetupErr(), ErrFrozen, "declaration errors latch on the object")
}

func TestXlet_HostRefusalAbortsSetup(t *testing.T) {
	o := newTestObject(t)
	require.NoError(t, o.AddInFloat(1))
	require.NoError(t, o.AddOutFloat(1))

	refuse := errors.New("host says no")
	b := &mockBinder{}
	b.m.On("BindInlet", 0, XletFloat, "").Return(nil)
	b.m.On("BindOutlet", 0, XletFloat, "").Return(nil, refuse)

	err := o.SetupInOut(b)
	require.ErrorIs(t, err, ErrSlotRefused)
	require.ErrorIs(t, err, refuse)
	b.m.AssertExpectations(t)
}

func TestXlet_InvalidDeclarations(t *testing.T) {
	o := newTestObject(t)
	require.ErrorIs(t, o.AddInFloat(0), ErrBadXlet)
	require.ErrorIs(t, o.SetupInOut(nil), ErrNoBinder)
	require.ErrorIs(t, o.SetupErr(), ErrBadXlet)
}

func TestXlet_Descriptions(t *testing.T) {
	o := newTestObject(t)
	require.NoError(t, o.AddInFloat(1))
	require.NoError(t, o.DescInlet(0, "frequency (Hz)"))
	require.ErrorIs(t, o.DescInlet(3, "nope"), ErrBadInlet)
	require.NoError(t, o.SetupInOut(&recBinder{}))
	require.ErrorIs(t, o.DescInlet(0, "late"), ErrFrozen)
}
