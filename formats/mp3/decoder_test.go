package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// Calculate how many samples we can fit in the buffer
	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := len(buf)
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	// Ensure we read complete samples (even number of bytes)
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	// Write samples as little-endian int16
	for i := range samplesToRead {
		sample := m.samples[m.offset+i]
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(sample))
	}

	m.offset += samplesToRead

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid MP3 data
	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecodePCM(t *testing.T) {
	t.Parallel()

	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}

	mockReader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    testSamples,
	}

	samples, err := decodePCM(mockReader)
	if err != nil {
		t.Fatalf("decodePCM() error = %v", err)
	}

	if len(samples) != len(testSamples) {
		t.Fatalf("decodePCM() len = %d, want %d", len(samples), len(testSamples))
	}

	for i, want := range testSamples {
		if samples[i] != want {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want)
		}
	}
}

func TestDecodePCM_Empty(t *testing.T) {
	t.Parallel()

	mockReader := &mockMP3Reader{sampleRate: 44100}

	samples, err := decodePCM(mockReader)
	if err != nil {
		t.Fatalf("decodePCM() error = %v", err)
	}

	if len(samples) != 0 {
		t.Errorf("decodePCM() len = %d, want 0", len(samples))
	}
}

func TestDecodePCM_ReadError(t *testing.T) {
	t.Parallel()

	mockReader := &mockMP3Reader{
		sampleRate:   44100,
		samples:      make([]int16, 100),
		returnErrors: true,
	}

	_, err := decodePCM(mockReader)
	if err == nil {
		t.Error("decodePCM() error = nil, want read error")
	}
}

func TestDecodePCM_LargeStream(t *testing.T) {
	t.Parallel()

	// Larger than a single mock read
	testSamples := make([]int16, 10000)
	for i := range testSamples {
		testSamples[i] = int16(i % 1000)
	}

	mockReader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    testSamples,
	}

	samples, err := decodePCM(mockReader)
	if err != nil {
		t.Fatalf("decodePCM() error = %v", err)
	}

	if len(samples) != len(testSamples) {
		t.Fatalf("decodePCM() len = %d, want %d", len(samples), len(testSamples))
	}

	for i, want := range testSamples {
		if samples[i] != want {
			t.Fatalf("samples[%d] = %d, want %d", i, samples[i], want)
		}
	}
}

func TestDecodePCM_StereoInterleaving(t *testing.T) {
	t.Parallel()

	// Stereo samples: L, R, L, R pattern
	testSamples := []int16{
		1000, 2000, // Frame 1: L=1000, R=2000
		3000, 4000, // Frame 2: L=3000, R=4000
		5000, 6000, // Frame 3: L=5000, R=6000
	}

	mockReader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    testSamples,
	}

	samples, err := decodePCM(mockReader)
	if err != nil {
		t.Fatalf("decodePCM() error = %v", err)
	}

	// Verify interleaving is preserved
	for i, want := range testSamples {
		if samples[i] != want {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want)
		}
	}
}

// BenchmarkDecodePCM benchmarks byte-to-sample conversion
func BenchmarkDecodePCM(b *testing.B) {
	samples := make([]int16, 44100*10) // 10 seconds
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		mockReader := &mockMP3Reader{
			sampleRate: 44100,
			samples:    samples,
		}
		_, _ = decodePCM(mockReader)
	}
}
