// internal/scene/scene.go
package scene

// Scene holds the point clouds drawn each frame, in draw order.
type Scene struct {
	objects []*Points
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) Add(p *Points) {
	if p == nil || s.indexOf(p) >= 0 {
		return
	}
	s.objects = append(s.objects, p)
}

// Remove detaches p. It reports whether p was attached.
func (s *Scene) Remove(p *Points) bool {
	i := s.indexOf(p)
	if i < 0 {
		return false
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	return true
}

// Replace swaps old for next in one step, keeping its draw position. When old
// is not attached, next is appended.
func (s *Scene) Replace(old, next *Points) {
	if i := s.indexOf(old); i >= 0 && old != nil {
		s.objects[i] = next
		return
	}
	s.Add(next)
}

// Objects returns the attached clouds. The slice must not be modified.
func (s *Scene) Objects() []*Points {
	return s.objects
}

func (s *Scene) Len() int {
	return len(s.objects)
}

func (s *Scene) Contains(p *Points) bool {
	return s.indexOf(p) >= 0
}

func (s *Scene) indexOf(p *Points) int {
	for i, o := range s.objects {
		if o == p {
			return i
		}
	}
	return -1
}
