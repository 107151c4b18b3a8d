package layers

import (
	"testing"
)

// TestCreateCenteredLayerWithContent tests layer creation with content
func TestCreateCenteredLayerWithContent(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
	}{
		{
			name:         "normal screen",
			content:      "Test Content",
			screenWidth:  120,
			screenHeight: 40,
		},
		{
			name:         "narrow screen",
			content:      "Content",
			screenWidth:  60,
			screenHeight: 20,
		},
		{
			name:         "content wider than screen",
			content:      "This is a very long piece of content that needs to be centered on the screen",
			screenWidth:  40,
			screenHeight: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)

			if layer == nil {
				t.Fatal("CreateCenteredLayer should return a layer for non-empty content")
			}
		})
	}
}

// TestCreateCenteredLayerWithEmptyContent tests layer creation with empty content
func TestCreateCenteredLayerWithEmptyContent(t *testing.T) {
	layer := CreateCenteredLayer("", 120, 40)

	if layer != nil {
		t.Error("CreateCenteredLayer should return nil for empty content")
	}
}

// TestModalSizeBounds keeps modals within their limits and the screen
func TestModalSizeBounds(t *testing.T) {
	tests := []struct {
		name                  string
		screenW, screenH      int
		wantWidth, wantHeight int
	}{
		{"wide screen caps width", 200, 40, FormMaxWidth, 30},
		{"medium screen uses fraction", 80, 24, 60, 18},
		{"narrow screen uses minimum", 50, 12, FormMinWidth, 10},
		{"tiny screen never overflows", 30, 8, 30, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ModalSize(tt.screenW, tt.screenH, FormMinWidth, FormMaxWidth)
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("ModalSize(%d, %d) = (%d, %d), want (%d, %d)",
					tt.screenW, tt.screenH, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
