package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(20101212, 0)
	require.NoError(t, err)
	return c
}

func TestNewContextValidation(t *testing.T) {
	_, err := NewContext(20101345, 0)
	assert.Error(t, err)

	_, err = NewContext(20101212, -1)
	assert.Error(t, err)

	_, err = NewContext(20101212, 24)
	assert.Error(t, err)

	c, err := NewContext(20101212, 23.5)
	require.NoError(t, err)
	assert.Equal(t, 20101212, c.DateLong())
	assert.InDelta(t, 23.5, c.UTHours(), 1e-12)
}

func TestParseSystem(t *testing.T) {
	for _, name := range []string{"GSM", "gsm", " Gsm "} {
		sys, err := ParseSystem(name)
		require.NoError(t, err)
		assert.Equal(t, GSM, sys)
	}

	_, err := ParseSystem("T96")
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
	_, err = ParseSystem("")
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
}

func TestBasesOrthonormal(t *testing.T) {
	c := testContext(t)

	for _, sys := range Systems() {
		m := c.mats[sys]
		mt := m.Transpose()
		prod := m.Mul(mt)

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.InDelta(t, want, prod[i][j], 1e-12, "%v [%d][%d]", sys, i, j)
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	c := testContext(t)
	v := Vec3{1.3, -2.7, 0.9}

	for _, from := range Systems() {
		for _, to := range Systems() {
			mid, err := c.Convert(v, from, to)
			require.NoError(t, err)

			back, err := c.Convert(mid, to, from)
			require.NoError(t, err)

			assert.InDelta(t, v.X, back.X, 1e-12, "%v->%v", from, to)
			assert.InDelta(t, v.Y, back.Y, 1e-12, "%v->%v", from, to)
			assert.InDelta(t, v.Z, back.Z, 1e-12, "%v->%v", from, to)

			// rotations preserve length
			assert.InDelta(t, v.Mag(), mid.Mag(), 1e-12, "%v->%v", from, to)
		}
	}
}

func TestSunGeometry(t *testing.T) {
	c := testContext(t)

	sun := c.Sun()
	assert.InDelta(t, 1.0, sun.Mag(), 1e-12)

	// December sun is below the equatorial plane
	assert.Negative(t, sun.Z)

	// sun direction is the +x axis of both GSE and GSM
	for _, sys := range []System{GSE, GSM} {
		got, err := c.Convert(sun, GEI, sys)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got.X, 1e-12, "%v", sys)
		assert.InDelta(t, 0.0, got.Y, 1e-12, "%v", sys)
		assert.InDelta(t, 0.0, got.Z, 1e-12, "%v", sys)
	}
}

func TestDipoleGeometry(t *testing.T) {
	c := testContext(t)

	axis, err := c.DipoleAxis(SM)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, axis.X, 1e-12)
	assert.InDelta(t, 0.0, axis.Y, 1e-12)
	assert.InDelta(t, 1.0, axis.Z, 1e-12)

	// dipole stays in the GSM xz-plane
	axisGSM, err := c.DipoleAxis(GSM)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, axisGSM.Y, 1e-12)

	// the geomagnetic pole is roughly 10 degrees off the rotation axis
	axisGEO, err := c.DipoleAxis(GEO)
	require.NoError(t, err)
	colat := math.Acos(axisGEO.Z) * degPerRad
	assert.InDelta(t, 10.0, colat, 3.0)

	assert.Less(t, math.Abs(c.DipoleTilt()), 35.0*radPerDeg)

	// epoch 2010 dipole strength
	assert.InDelta(t, 29950, c.DipoleMoment(), 150)
}

func TestMLT(t *testing.T) {
	c := testContext(t)

	noon, err := c.MLT(Vec3{5, 0, 1}, SM)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, noon, 1e-9)

	midnight, err := c.MLT(Vec3{-5, 0, 1}, SM)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, math.Min(midnight, 24-midnight), 1e-9)

	dusk, err := c.MLT(Vec3{0, 5, 0}, SM)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, dusk, 1e-9)

	for _, v := range []Vec3{{1, 2, 2}, {-3, 0.5, -1}, {0.2, -4, 2}} {
		mlt, err := c.MLT(v, GSM)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, mlt, 0.0)
		assert.Less(t, mlt, 24.0)
	}
}

func TestVec3Ops(t *testing.T) {
	v := Vec3{1, 2, 2}
	assert.InDelta(t, 3.0, v.Mag(), 1e-12)
	assert.InDelta(t, 1.0, v.Normalize().Mag(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())

	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.InDelta(t, 0.0, x.Dot(y), 1e-15)

	assert.Equal(t, Vec3{2, 2, 2}, Vec3{1, 1, 1}.Add(Vec3{1, 1, 1}))
	assert.Equal(t, Vec3{0, 1, 3}, Vec3{1, 2, 5}.Sub(Vec3{1, 1, 2}))
	assert.Equal(t, Vec3{2, 4, 10}, Vec3{1, 2, 5}.Scale(2))
}
