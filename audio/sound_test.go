package audio

import "testing"

func TestSound_ForwardsLifecycle(t *testing.T) {
	t.Parallel()

	mixer := NewMixer(1, 8000)
	sound := NewSound(mixer, newRampSource(8000, 1, 8), nil)

	if sound.ID() == 0 {
		t.Fatal("ID() = 0, want a minted id")
	}

	sound.Play()
	buf := make([]int16, 4)
	mixer.WriteSamples(buf)
	if buf[0] != 0 || buf[3] != 3 {
		t.Fatalf("after Play = [%d..%d], want [0..3]", buf[0], buf[3])
	}

	sound.Pause()
	mixer.WriteSamples(buf)
	if buf[0] != 0 {
		t.Fatalf("after Pause buf[0] = %d, want 0", buf[0])
	}

	sound.Play()
	mixer.WriteSamples(buf)
	if buf[0] != 4 {
		t.Fatalf("after resume buf[0] = %d, want 4", buf[0])
	}

	sound.Stop()
	sound.Play()
	mixer.WriteSamples(buf)
	if buf[0] != 0 {
		t.Errorf("after Stop+Play buf[0] = %d, want 0", buf[0])
	}
}

func TestSound_SettersForward(t *testing.T) {
	t.Parallel()

	mixer := NewMixer(1, 8000)
	sound := NewSound(mixer, newConstantSource(8000, 1, 64, 1000), nil)

	sound.SetVolume(0.5)
	sound.SetLoop(true)
	sound.SetEffect(func(x float32) float32 { return x * 2 })
	sound.Play()

	buf := make([]int16, 8)
	mixer.WriteSamples(buf)

	// effect doubles, then volume halves
	if buf[0] != 1000 {
		t.Errorf("buf[0] = %d, want 1000", buf[0])
	}
}

func TestSound_ResetKeepsPlaying(t *testing.T) {
	t.Parallel()

	mixer := NewMixer(1, 8000)
	sound := NewSound(mixer, newRampSource(8000, 1, 16), nil)
	sound.Play()

	buf := make([]int16, 4)
	mixer.WriteSamples(buf)

	sound.Reset()

	mixer.WriteSamples(buf)
	if buf[0] != 0 {
		t.Errorf("after Reset buf[0] = %d, want 0 (rewound, still playing)", buf[0])
	}
}

func TestSound_CloseDoesNotCutOff(t *testing.T) {
	t.Parallel()

	mixer := NewMixer(1, 8000)
	sound := NewSound(mixer, newRampSource(8000, 1, 4), nil)
	sound.Play()
	sound.Close()

	// The abandoned sound still plays its final samples.
	buf := make([]int16, 8)
	mixer.WriteSamples(buf)
	for i, want := range []int16{0, 1, 2, 3, 0, 0, 0, 0} {
		if buf[i] != want {
			t.Errorf("buf[%d] = %d, want %d", i, buf[i], want)
		}
	}

	// Gone after the pass that finished it.
	sound.Play()
	mixer.WriteSamples(buf)
	if buf[0] != 0 {
		t.Errorf("buf[0] = %d, want 0 (sound removed after Close)", buf[0])
	}
}

func TestSound_CloseIdempotent(t *testing.T) {
	t.Parallel()

	mixer := NewMixer(1, 8000)
	sound := NewSound(mixer, newConstantSource(8000, 1, 4, 50), nil)

	sound.Close()
	sound.Close()
	sound.Close()

	// Operations on a closed handle stay harmless no-ops once the
	// sound is removed.
	buf := make([]int16, 8)
	mixer.WriteSamples(buf)
	sound.Play()
	sound.SetVolume(2)
}

func TestSound_ClosedIdleSoundRemovedOnFinish(t *testing.T) {
	t.Parallel()

	mixer := NewMixer(1, 8000)
	sound := NewSound(mixer, newConstantSource(8000, 1, 4, 75), nil)
	sound.Close()

	// Idle at close time: it stays in the mixer until it is played and
	// finishes a pass.
	sound.Play()
	buf := make([]int16, 8)
	mixer.WriteSamples(buf)
	if buf[0] != 75 {
		t.Errorf("buf[0] = %d, want 75", buf[0])
	}

	sound.Play()
	mixer.WriteSamples(buf)
	if buf[0] != 0 {
		t.Errorf("buf[0] = %d, want 0 after removal", buf[0])
	}
}
