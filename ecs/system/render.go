package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

// RenderSystem draws every sprite relative to the first camera.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view := cameraView(w, screen)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.SpriteComponent.Kind())
		sj, _ := ecs.Get(w, entities[j], component.SpriteComponent.Kind())
		return si.Layer < sj.Layer
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Color == nil {
			continue
		}

		sw := s.Width * scaleOrOne(t.ScaleX)
		sh := s.Height * scaleOrOne(t.ScaleY)
		// top-left corner in world space (y-up)
		x, y := view.toScreen(t.X-sw/2, t.Y+sh/2)
		vector.FillRect(screen, float32(x), float32(y), float32(sw*view.zoom), float32(sh*view.zoom), s.Color, false)
	}
}

// view projects y-up world coordinates onto the screen so the camera sits at
// the screen center.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return (x-v.camX)*v.zoom + v.halfW, v.halfH - (y-v.camY)*v.zoom
}

func cameraView(w *ecs.World, screen *ebiten.Image) view {
	b := screen.Bounds()
	v := view{zoom: 1, halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}

	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.camX = camTransform.X
		v.camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		v.zoom = camComp.Zoom
	}
	return v
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
