package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pool-scene/internal/scene"
)

const skyboxScale = 1000

// skybox draws a scene's cube texture as a large cube centred on the camera. The
// decoded strip arrives from a loader goroutine; GPU upload is deferred to the first
// Draw after it resolves so it runs on the thread that owns the GL context.
type skybox struct {
	source    *scene.CubeTexture
	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	shader    rl.Shader
	camPosLoc int32
	loaded    bool
	failed    bool
}

// ensureLoaded uploads cube once its six faces are decoded. Switching to a different
// background releases the previous cubemap.
func (s *skybox) ensureLoaded(cube *scene.CubeTexture, log Diagnostics) {
	if cube != s.source {
		s.release()
		s.source = cube
	}
	if cube == nil || s.loaded || s.failed {
		return
	}
	strip, ok := cube.Image()
	if !ok {
		return
	}
	img := rl.NewImageFromImage(strip)
	s.tex = rl.LoadTextureCubemap(img, rl.CubemapLayoutLineVertical)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(s.tex) {
		s.failed = true
		log.Errorf("render: skybox cubemap upload failed")
		return
	}
	shader := rl.LoadShaderFromMemory(skyboxVS, skyboxFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.tex)
		s.failed = true
		log.Errorf("render: skybox shader failed to compile")
		return
	}
	shader.UpdateLocation(int32(rl.ShaderLocMapCubemap), rl.GetShaderLocation(shader, "environmentMap"))
	s.shader = shader
	s.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.mtl = rl.LoadMaterialDefault()
	s.mtl.Shader = shader
	rl.SetMaterialTexture(&s.mtl, rl.MapCubemap, s.tex)
	s.loaded = true
}

// draw renders the skybox with depth writes and back-face culling off so opaque
// geometry drawn afterwards always lands in front of it.
func (s *skybox) draw(camPos scene.Vec3) {
	if !s.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(camPos[0], camPos[1], camPos[2])
	if s.camPosLoc >= 0 {
		rl.SetShaderValue(s.shader, s.camPosLoc, camPos[:], rl.ShaderUniformVec3)
	}
	rl.DrawMesh(s.mesh, s.mtl, rl.MatrixMultiply(scale, trans))
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (s *skybox) release() {
	if !s.loaded {
		s.failed = false
		return
	}
	rl.UnloadMesh(&s.mesh)
	rl.UnloadTexture(s.tex)
	rl.UnloadShader(s.shader)
	s.loaded = false
	s.failed = false
}
