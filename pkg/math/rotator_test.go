package math

import (
	"math"
	"testing"
)

func TestLookAtRotation(t *testing.T) {
	tests := []struct {
		name      string
		from, to  Vec3
		wantYaw   float32
		wantPitch float32
	}{
		{"forward", Vec3{}, Vec3{10, 0, 0}, 0, 0},
		{"left", Vec3{}, Vec3{0, 5, 0}, 90, 0},
		{"back", Vec3{1, 1, 0}, Vec3{-1, 1, 0}, 180, 0},
		{"up", Vec3{}, Vec3{1, 0, 1}, 0, 45},
		{"down right", Vec3{}, Vec3{0, -1, -1}, -90, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := LookAtRotation(tt.from, tt.to)
			if math.Abs(float64(r.Yaw-tt.wantYaw)) > 0.01 {
				t.Errorf("Yaw = %v, want %v", r.Yaw, tt.wantYaw)
			}
			if math.Abs(float64(r.Pitch-tt.wantPitch)) > 0.01 {
				t.Errorf("Pitch = %v, want %v", r.Pitch, tt.wantPitch)
			}
			if r.Roll != 0 {
				t.Errorf("Roll = %v, want 0", r.Roll)
			}
		})
	}
}

func TestQuatLookAtFacesTarget(t *testing.T) {
	from := Vec3{3, -2, 1}
	targets := []Vec3{{10, 4, 1}, {3, -2, 9}, {-4, -7, -3}, {3.5, -2, 1}}

	for _, to := range targets {
		fwd := QuatLookAt(from, to).Rotate(Vec3Forward)
		want := to.Sub(from).Normalize()
		if !fwd.ApproxEqual(want, 1e-4) {
			t.Errorf("QuatLookAt(%v, %v) forward = %v, want %v", from, to, fwd, want)
		}
	}
}

func TestQuatLookAtCoincident(t *testing.T) {
	p := Vec3{1, 2, 3}
	if q := QuatLookAt(p, p); !q.IsIdentity() {
		t.Errorf("QuatLookAt of coincident points = %v, want identity", q)
	}
}
