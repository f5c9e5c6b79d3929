package controller

import rl "github.com/gen2brain/raylib-go/raylib"

// InputState is one tick's worth of held buttons. The frame loop builds it
// from whatever input backend it uses and hands it to Update by value.
type InputState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Crouch  bool
	Boost   bool
}

// Moving reports whether any horizontal direction is held.
func (in InputState) Moving() bool {
	return in.Forward || in.Back || in.Left || in.Right
}

// WishDir sums the held directions from the given basis and normalizes the
// result. Opposite keys cancel; with nothing held it is the zero vector.
func (in InputState) WishDir(forward, right rl.Vector3) rl.Vector3 {
	var wish rl.Vector3
	if in.Forward {
		wish = rl.Vector3Add(wish, forward)
	}
	if in.Back {
		wish = rl.Vector3Subtract(wish, forward)
	}
	if in.Left {
		wish = rl.Vector3Subtract(wish, right)
	}
	if in.Right {
		wish = rl.Vector3Add(wish, right)
	}

	if rl.Vector3DotProduct(wish, wish) > 0 {
		return rl.Vector3Normalize(wish)
	}
	return rl.Vector3{}
}
