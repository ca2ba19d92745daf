package viewport

import "github.com/gogpu/mapcanvas"

// animation is one in-flight viewport tween. Exactly one may be active;
// starting a new one stops the previous so two tweens never fight over the
// shared scale/position values.
type animation struct {
	fromScale, toScale float64
	fromPos, toPos     mapcanvas.Point

	elapsed  float64
	duration float64
	ease     mapcanvas.Easing

	onComplete func()
}

// animateTo starts a tween from the current transform to the target.
// A missing layer handle makes this a silent no-op: there is nothing to
// animate onto yet, and the caller is expected to retry after mount.
func (v *Viewport) animateTo(scale float64, pos mapcanvas.Point, onComplete func()) {
	if v.layer == nil {
		mapcanvas.Logger().Debug("viewport: animate with no layer attached")
		return
	}
	// Last writer wins: an in-flight tween is stopped, not blended.
	v.Stop()
	v.anim = &animation{
		fromScale:  v.scale,
		toScale:    scale,
		fromPos:    v.position,
		toPos:      pos,
		duration:   v.duration,
		ease:       v.ease,
		onComplete: onComplete,
	}
}

// Stop cancels the in-flight transition, if any, leaving the transform at
// its current intermediate value. The canceled transition's completion
// callback does not run. After Stop, IsZooming reports false.
func (v *Viewport) Stop() {
	v.anim = nil
}

// Tick advances the in-flight transition by dt seconds, applying the
// interpolated transform to the attached layer. The render loop calls this
// once per frame; tests call it directly. Tick is a no-op when no
// transition is active.
func (v *Viewport) Tick(dt float64) {
	a := v.anim
	if a == nil {
		return
	}
	a.elapsed += dt

	if a.elapsed >= a.duration {
		v.scale = a.toScale
		v.position = a.toPos
		v.anim = nil
		v.apply()
		if a.onComplete != nil {
			a.onComplete()
		}
		return
	}

	k := mapcanvas.Ease(a.ease, a.elapsed/a.duration)
	v.scale = mapcanvas.LerpFloat(a.fromScale, a.toScale, k)
	v.position = a.fromPos.Lerp(a.toPos, k)
	v.apply()
}

// apply pushes the current transform onto the layer handle.
func (v *Viewport) apply() {
	if v.layer != nil {
		v.layer.SetTransform(v.scale, v.position)
	}
}
