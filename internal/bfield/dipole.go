package bfield

import "github.com/openmag/geomag/internal/coords"

// CenteredDipole is the tilted centered dipole. The moment comes from the
// first-degree IGRF coefficients held by the transform context.
type CenteredDipole struct{}

// Name implements Model.
func (CenteredDipole) Name() string { return "cdip" }

// Eval implements Model. The dipole is axial in SM coordinates, so the
// position is rotated there, evaluated and rotated back.
func (CenteredDipole) Eval(ctx *coords.Context, posGSM coords.Vec3) coords.Vec3 {
	sm, _ := ctx.Convert(posGSM, coords.GSM, coords.SM)

	b0 := ctx.DipoleMoment()
	r2 := sm.Dot(sm)
	if r2 == 0 {
		return coords.Vec3{}
	}
	r := sm.Mag()
	r5 := r2 * r2 * r

	bSM := coords.Vec3{
		X: -3 * b0 * sm.X * sm.Z / r5,
		Y: -3 * b0 * sm.Y * sm.Z / r5,
		Z: b0 * (r2 - 3*sm.Z*sm.Z) / r5,
	}

	bGSM, _ := ctx.Convert(bSM, coords.SM, coords.GSM)
	return bGSM
}

// DipoleIMF is the open-magnetosphere superposition of the centered dipole
// and a uniform southward interplanetary field. Field lines threading the
// polar caps connect to the interplanetary field.
type DipoleIMF struct {
	// IMF is the southward field magnitude in nT.
	IMF float64
}

// Name implements Model.
func (DipoleIMF) Name() string { return "dungey" }

// Eval implements Model.
func (m DipoleIMF) Eval(ctx *coords.Context, posGSM coords.Vec3) coords.Vec3 {
	b := CenteredDipole{}.Eval(ctx, posGSM)
	b.Z -= m.IMF
	return b
}
