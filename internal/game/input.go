package game

// Blast is the one-tick trigger armed by a valid pointer release. It is
// consumed by the combat resolver and cleared at the end of that tick
// whether or not anything was in range.
type Blast struct {
	Armed      bool
	X, Y       float64
	Strength   float64
	DirX, DirY float64
}

// Pointer is the normalized pointer-with-buttons model the driving layer
// feeds. It owns the press-hold-release charge state machine: hold to
// charge, pull back to aim, release to shoot opposite the drag.
type Pointer struct {
	X, Y   float64
	VX, VY float64 // smoothed recent motion, for the fling interaction
	Down   bool

	Charging     bool
	Charge       float64
	DragX, DragY float64 // captured at charge start

	Blast Blast
}

func (pt *Pointer) Move(x, y float64) {
	pt.VX = pt.VX*0.7 + (x-pt.X)*0.3
	pt.VY = pt.VY*0.7 + (y-pt.Y)*0.3
	pt.X = x
	pt.Y = y
}

// Press starts a charge and captures the drag-start point.
func (pt *Pointer) Press(audio AudioSink) {
	pt.Down = true
	pt.Charging = true
	pt.Charge = 0
	pt.DragX = pt.X
	pt.DragY = pt.Y
	if audio != nil {
		audio.ChargeStart()
	}
}

// Release ends the charge. If the drag vector clears the aim threshold it
// arms a blast at the release point, aimed along drag-start minus release;
// below the threshold the charge is silently discarded. Charge always
// resets to zero.
func (pt *Pointer) Release(audio AudioSink) {
	if !pt.Down {
		return
	}
	pt.Down = false
	if !pt.Charging {
		return
	}
	pt.Charging = false
	if audio != nil {
		audio.ChargeStop()
	}

	dx := pt.DragX - pt.X
	dy := pt.DragY - pt.Y
	if dx*dx+dy*dy > AimThresholdSq {
		pt.Blast = Blast{
			Armed:    true,
			X:        pt.X,
			Y:        pt.Y,
			Strength: pt.Charge,
			DirX:     dx,
			DirY:     dy,
		}
		if audio != nil {
			audio.Shoot(pt.Charge / ChargeMax)
		}
	}
	pt.Charge = 0
}

// chargeTick accumulates charge while the button is held.
func (pt *Pointer) chargeTick(audio AudioSink) {
	if !pt.Charging {
		return
	}
	pt.Charge += ChargeIncrement
	if pt.Charge > ChargeMax {
		pt.Charge = ChargeMax
	}
	if audio != nil {
		audio.ChargeUpdate(pt.Charge, ChargeMax)
	}
}

// ClearTrigger drops any armed blast at tick end, consumed or not.
func (pt *Pointer) ClearTrigger() {
	pt.Blast = Blast{}
}
