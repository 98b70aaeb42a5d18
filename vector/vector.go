// Package vector provides small fixed-layout 2D and 3D vector types used by
// the location package for local tangent-plane (NE/NED/NEU) quantities.
package vector

import "math"

// Float constrains the scalar width of a vector.
type Float interface {
	~float32 | ~float64
}

// Vec2 is a 2D vector. For tangent-plane use, X is north and Y is east.
type Vec2[T Float] struct {
	X, Y T
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by k.
func (v Vec2[T]) Scale(k T) Vec2[T] { return Vec2[T]{v.X * k, v.Y * k} }

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// LengthSquared returns the squared Euclidean norm.
func (v Vec2[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean norm.
func (v Vec2[T]) Length() T { return T(math.Sqrt(float64(v.LengthSquared()))) }

// Vec3 is a 3D vector. The interpretation of Z (up for NEU, down for NED)
// is set by the call site.
type Vec3[T Float] struct {
	X, Y, Z T
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by k.
func (v Vec3[T]) Scale(k T) Vec3[T] { return Vec3[T]{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSquared returns the squared Euclidean norm.
func (v Vec3[T]) LengthSquared() T { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the Euclidean norm.
func (v Vec3[T]) Length() T { return T(math.Sqrt(float64(v.LengthSquared()))) }

// XY returns the horizontal part of the vector.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }
