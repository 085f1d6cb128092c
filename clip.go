package ggdxf

// ApplyClip confines later primitives to r, given in local coordinates and
// mapped by st.Transform. The clip intersects any clip already applied; a
// rotated rectangle clips to its bounding box.
func (a *Adapter) ApplyClip(r Rect, st GraphicsState) error {
	if err := a.check("ApplyClip"); err != nil {
		return err
	}
	m, ok := a.device("ApplyClip", st)
	if !ok {
		return nil
	}
	dev := r.Transform(m)
	if a.clip != nil {
		dev = a.clip.Intersect(dev)
	}
	a.clip = &dev
	return nil
}

// ResetClip removes the clip set with ApplyClip.
func (a *Adapter) ResetClip() error {
	if err := a.check("ResetClip"); err != nil {
		return err
	}
	a.clip = nil
	return nil
}

// ClipRect returns the device space clip set with ApplyClip.
func (a *Adapter) ClipRect() (Rect, bool) {
	if a.clip == nil {
		return Rect{}, false
	}
	return *a.clip, true
}
