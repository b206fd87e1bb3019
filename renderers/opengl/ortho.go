package opengl

// Orthographic returns the column-major projection that maps pixel coordinates with the origin at the top-left and Y pointing down to clip space.
func Orthographic(width, height float64) [16]float32 {
	return [16]float32{
		float32(2.0 / width), 0, 0, 0,
		0, float32(-2.0 / height), 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// Project applies the projection of Orthographic to the point (x,y).
func Project(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}
