package render

// Lit shader: one directional, one ambient and one point light, evaluated in linear
// space. Material colours and sRGB-tagged maps are linearised first; the result is
// encoded back to sRGB. Same vertex attributes as raylib meshes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float useMap;
uniform float mapSRGB;
uniform vec3 viewPos;
uniform vec3 dirLightDir;
uniform vec3 dirLightColor;
uniform vec3 ambientColor;
uniform vec3 pointLightPos;
uniform vec3 pointLightColor;
uniform float pointLightDistance;
uniform float pointLightDecay;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
const float PI = 3.14159265359;
vec3 toLinear(vec3 c) { return pow(c, vec3(2.2)); }
float specular(vec3 N, vec3 L, vec3 V) {
  vec3 H = normalize(L + V);
  return pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
}
void main() {
  vec3 base = toLinear(colDiffuse.rgb);
  if (useMap > 0.5) {
    vec3 texel = texture(texture0, fragTexCoord).rgb;
    base *= mapSRGB > 0.5 ? toLinear(texel) : texel;
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 diffuse = base / PI;

  vec3 light = ambientColor * diffuse;

  vec3 Ld = normalize(dirLightDir);
  float ndl = max(dot(N, Ld), 0.0);
  light += dirLightColor * ndl * (diffuse + specular(N, Ld, V));

  vec3 toPoint = pointLightPos - fragPosition;
  float d = length(toPoint);
  vec3 Lp = toPoint / max(d, 1e-4);
  float att = 1.0 / max(pow(d, pointLightDecay), 0.01);
  if (pointLightDistance > 0.0) {
    att *= pow(clamp(1.0 - pow(d / pointLightDistance, 4.0), 0.0, 1.0), 2.0);
  }
  float ndp = max(dot(N, Lp), 0.0);
  light += pointLightColor * att * ndp * (diffuse + specular(N, Lp, V));

  finalColor = vec4(pow(light, vec3(1.0 / 2.2)), colDiffuse.a);
}
`
)

// Cubemap skybox shader: a unit cube centred on the camera, sampled by view direction.
const (
	skyboxVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	skyboxFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform samplerCube environmentMap;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  finalColor = vec4(texture(environmentMap, dir).rgb, 1.0);
}
`
)
