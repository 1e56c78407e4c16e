package entity

// Frame — один декодированный кадр видео.
type Frame struct {
	Index  int    // номер кадра в исходном видео, от нуля
	Width  int    // ширина в пикселях
	Height int    // высота в пикселях
	Data   []byte // кадр в кодировке JPEG; не изменять после создания
}

// FrameObservation — результат детекции позы на одном кадре.
// Landmarks == nil означает, что тело в кадре не найдено.
type FrameObservation struct {
	Index     int
	Landmarks LandmarkSet
}

// Detected сообщает, была ли на кадре найдена поза.
func (o FrameObservation) Detected() bool {
	return o.Landmarks != nil
}
