package geo

import "math"

// Радиус Земли в метрах для сферического приближения
const earthRadiusMeters = 6371000.0

// Point - координата в градусах WGS84
type Point struct {
	Lat float64
	Lng float64
}

// BoundingBox - прямоугольник видимой области карты.
// Это предикат вьюпорта и он не взаимозаменяем с круговой проверкой зоны.
type BoundingBox struct {
	NorthEast Point
	SouthWest Point
}

// Distance возвращает расстояние большого круга между точками в метрах (хаверсинус)
func Distance(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// IsWithinRadius сообщает, лежит ли точка в круге заданного радиуса.
// Радиус должен быть положительным, иначе всегда false; бизнес-границы
// радиуса [100, 10000] проверяют вызывающие, не эта функция.
func IsWithinRadius(p, center Point, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		return false
	}
	return Distance(p, center) <= radiusMeters
}

// Normalized возвращает бокс с упорядоченными углами, если клиент перепутал их местами
func (b BoundingBox) Normalized() BoundingBox {
	n := b
	if n.NorthEast.Lat < n.SouthWest.Lat {
		n.NorthEast.Lat, n.SouthWest.Lat = n.SouthWest.Lat, n.NorthEast.Lat
	}
	if n.NorthEast.Lng < n.SouthWest.Lng {
		n.NorthEast.Lng, n.SouthWest.Lng = n.SouthWest.Lng, n.NorthEast.Lng
	}
	return n
}

// Contains проверяет попадание точки во вьюпорт
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// IntersectsCircle проверяет, пересекается ли вьюпорт с кругом зоны интереса.
// Берём ближайшую к центру точку бокса и сравниваем расстояние с радиусом.
func (b BoundingBox) IntersectsCircle(center Point, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		return false
	}
	nearest := Point{
		Lat: clamp(center.Lat, b.SouthWest.Lat, b.NorthEast.Lat),
		Lng: clamp(center.Lng, b.SouthWest.Lng, b.NorthEast.Lng),
	}
	return Distance(center, nearest) <= radiusMeters
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
