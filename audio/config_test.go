package audio

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("audio disabled by default")
	}
	if cfg.MasterVolume <= 0 || cfg.MasterVolume > 1 {
		t.Errorf("default master volume %v out of range", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("default sample rate %d, want 48000", cfg.SampleRate)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("FRACTAL_EXPLORER_AUDIO_ENABLED", "false")
	t.Setenv("FRACTAL_EXPLORER_MASTER_VOLUME", "150")
	t.Setenv("FRACTAL_EXPLORER_SAMPLE_RATE", "44100")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("FRACTAL_EXPLORER_AUDIO_ENABLED=false not honored")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("volume 150%% clamped to %v, want 1", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("sample rate %d, want 44100", cfg.SampleRate)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("FRACTAL_EXPLORER_AUDIO_ENABLED", "maybe")
	t.Setenv("FRACTAL_EXPLORER_MASTER_VOLUME", "loud")
	t.Setenv("FRACTAL_EXPLORER_SAMPLE_RATE", "-1")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("garbage environment changed config: %+v", cfg)
	}
}

func TestVolumeGain(t *testing.T) {
	if volumeGain(1) != 0 {
		t.Errorf("full volume gain is %v, want 0", volumeGain(1))
	}
	if volumeGain(0.5) != -1 {
		t.Errorf("half volume gain is %v, want -1", volumeGain(0.5))
	}
	if volumeGain(0) != 0 {
		t.Errorf("zero volume gain is %v, want 0 with Silent set", volumeGain(0))
	}
}

func TestDisabledCuesAreNoOps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	c := NewCues(cfg)
	if err := c.Initialize(); err != nil {
		t.Fatalf("disabled initialize returned %v", err)
	}
	// must not panic without a speaker
	c.RenderDone()
	c.InvalidInput()
	c.Cleanup()
}
