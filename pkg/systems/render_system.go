package systems

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/huly-landing/pkg/components"
	"github.com/gonewx/huly-landing/pkg/ecs"
	"github.com/gonewx/huly-landing/pkg/game"
	"github.com/gonewx/huly-landing/pkg/utils"
)

// maxParentDepth 向上合成父元素变换的最大层数
const maxParentDepth = 4

// 页面底色与输入框配色
var (
	pageBackground   = color.RGBA{R: 3, G: 0, B: 20, A: 255}
	placeholderColor = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	focusBorderColor = color.RGBA{R: 168, G: 85, B: 247, A: 255}
	followerColor    = color.RGBA{R: 168, G: 85, B: 247, A: 255}
)

// Placement 元素在屏幕上的最终摆放（所有通道和父元素变换合成之后）
type Placement struct {
	Rect    utils.Rect
	Scale   float64
	Opacity float64
	RotateX float64
	RotateY float64
}

type faceKey struct {
	size float64
	bold bool
}

// RenderSystem 落地页渲染系统
//
// 按实体创建顺序（即页面文档顺序）绘制：面板 → 几何体 → 星空 → 文本 → 输入框 → 二维码，
// 最后绘制跟随光标。所有几何体用 vector 矢量绘制，文本用 text/v2 + Go 字体。
// 渲染系统只读组件，不修改任何动画状态。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	signal        *game.ScrollSignal
	clock         *game.Clock
	fonts         *utils.FontSet

	faces    map[faceKey]*text.GoTextFace
	qrImages map[ecs.EntityID]*ebiten.Image
	qrFailed map[ecs.EntityID]bool

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex // 顶点数组（复用，避免每帧分配）
	indices       []uint16        // 索引数组（复用，避免每帧分配）
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, signal *game.ScrollSignal, clock *game.Clock, fonts *utils.FontSet) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		entityManager: em,
		signal:        signal,
		clock:         clock,
		fonts:         fonts,
		faces:         make(map[faceKey]*text.GoTextFace),
		qrImages:      make(map[ecs.EntityID]*ebiten.Image),
		qrFailed:      make(map[ecs.EntityID]bool),
		whiteImage:    white,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:      make([]ebiten.Vertex, 0, 256),
		indices:       make([]uint16, 0, 384),
	}
}

// Draw 绘制整页
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(pageBackground)

	viewport := utils.Rect{
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}

	for _, id := range ecs.GetEntitiesWith2[*components.BoundsComponent, *components.VisualComponent](s.entityManager) {
		p, ok := s.ResolvePlacement(id)
		if !ok || p.Opacity <= 0.005 {
			continue
		}
		if !p.Rect.Intersects(viewport) {
			continue
		}
		s.drawEntity(screen, id, p)
	}

	s.drawFollowers(screen)
}

// Close 释放缓存的图片
func (s *RenderSystem) Close() {
	for id, img := range s.qrImages {
		img.Deallocate()
		delete(s.qrImages, id)
	}
	s.whiteImage.Deallocate()
}

// ResolvePlacement 计算元素的屏幕摆放
// 先应用元素自身的合成变换，再逐级应用父元素变换（以父元素中心为缩放基准），
// 最后减去滚动距离并按旋转角压缩宽高（伪 3D）。
func (s *RenderSystem) ResolvePlacement(id ecs.EntityID) (Placement, bool) {
	bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
	if !ok {
		return Placement{}, false
	}
	visual, ok := ecs.GetComponent[*components.VisualComponent](s.entityManager, id)
	if !ok {
		return Placement{}, false
	}

	t := visual.Combined()
	p := Placement{
		Rect:    bounds.Rect.Offset(t.OffsetX, t.OffsetY).ScaleAroundCenter(t.Scale),
		Scale:   t.Scale,
		Opacity: t.Opacity,
		RotateX: t.RotateX,
		RotateY: t.RotateY,
	}

	current := id
	for depth := 0; depth < maxParentDepth; depth++ {
		parent, ok := ecs.GetComponent[*components.ParentComponent](s.entityManager, current)
		if !ok {
			break
		}
		pb, okB := ecs.GetComponent[*components.BoundsComponent](s.entityManager, parent.Parent)
		pv, okV := ecs.GetComponent[*components.VisualComponent](s.entityManager, parent.Parent)
		if !okB || !okV {
			break // 父元素已销毁
		}

		pt := pv.Combined()
		p.Rect = p.Rect.ScaleAround(pb.Rect.CenterX(), pb.Rect.CenterY(), pt.Scale).Offset(pt.OffsetX, pt.OffsetY)
		p.Scale *= pt.Scale
		p.Opacity *= pt.Opacity
		p.RotateX += pt.RotateX
		p.RotateY += pt.RotateY
		current = parent.Parent
	}

	p.Rect = p.Rect.Offset(0, -s.signal.Offset())
	if p.RotateX != 0 || p.RotateY != 0 {
		p.Rect = p.Rect.ScaleAxes(math.Abs(math.Cos(p.RotateY*math.Pi/180)), math.Abs(math.Cos(p.RotateX*math.Pi/180)))
	}
	p.Opacity = utils.Clamp01(p.Opacity)
	return p, true
}

// drawEntity 绘制单个元素的所有可绘制组件
func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, p Placement) {
	if panel, ok := ecs.GetComponent[*components.PanelComponent](s.entityManager, id); ok {
		s.drawPanel(screen, p, panel)
	}
	if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
		s.drawShape(screen, p, shape)
	}
	if field, ok := ecs.GetComponent[*components.StarFieldComponent](s.entityManager, id); ok {
		s.drawStarField(screen, p, field)
	}
	if txt, ok := ecs.GetComponent[*components.TextComponent](s.entityManager, id); ok {
		s.drawText(screen, p, txt)
	}
	if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id); ok {
		s.drawTextInput(screen, p, input)
	}
	if qr, ok := ecs.GetComponent[*components.QRCodeComponent](s.entityManager, id); ok {
		s.drawQRCode(screen, id, p, qr)
	}
}

// face 返回缓存的字体 face
func (s *RenderSystem) face(size float64, bold bool) *text.GoTextFace {
	// 缩放动画会产生连续字号，按 0.5px 取整以限制缓存大小
	size = math.Max(1, math.Round(size*2)/2)
	key := faceKey{size: size, bold: bold}
	if f, ok := s.faces[key]; ok {
		return f
	}
	f := s.fonts.Face(size, bold)
	s.faces[key] = f
	return f
}

// drawPanel 绘制卡片背景：渐变或纯色填充 + 描边
func (s *RenderSystem) drawPanel(screen *ebiten.Image, p Placement, panel *components.PanelComponent) {
	r := p.Rect
	if panel.GradientFrom.A > 0 || panel.GradientTo.A > 0 {
		s.drawGradientRect(screen, r, panel.GradientFrom, panel.GradientTo, p.Opacity)
	} else if panel.Fill.A > 0 {
		s.drawRoundedRect(screen, r, panel.Radius*p.Scale, panel.Fill, p.Opacity)
	}

	if panel.Border.A > 0 {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			1, utils.WithAlpha(panel.Border, p.Opacity), true)
	}
}

// drawRoundedRect 绘制圆角矩形
func (s *RenderSystem) drawRoundedRect(screen *ebiten.Image, r utils.Rect, radius float64, clr color.RGBA, opacity float64) {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	if radius <= 0.5 {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			utils.WithAlpha(clr, opacity), true)
		return
	}
	s.fillPolygon(screen, roundedRectPoints(r, radius), clr, opacity)
}

// roundedRectPoints 圆角矩形轮廓（每个角 6 段圆弧）
func roundedRectPoints(r utils.Rect, radius float64) [][2]float64 {
	const arcSegments = 6
	centers := [4][2]float64{
		{r.Right() - radius, r.Y + radius},        // 右上
		{r.Right() - radius, r.Bottom() - radius}, // 右下
		{r.X + radius, r.Bottom() - radius},       // 左下
		{r.X + radius, r.Y + radius},              // 左上
	}
	points := make([][2]float64, 0, 4*(arcSegments+1))
	for i, c := range centers {
		start := -math.Pi/2 + float64(i)*math.Pi/2
		for j := 0; j <= arcSegments; j++ {
			a := start + float64(j)/arcSegments*math.Pi/2
			points = append(points, [2]float64{c[0] + math.Cos(a)*radius, c[1] + math.Sin(a)*radius})
		}
	}
	return points
}

// drawGradientRect 绘制从左上到右下的渐变矩形（顶点颜色插值）
func (s *RenderSystem) drawGradientRect(screen *ebiten.Image, r utils.Rect, from, to color.RGBA, opacity float64) {
	mid := utils.MixColor(from, to, 0.5)
	corners := [4]struct {
		x, y float64
		c    color.RGBA
	}{
		{r.X, r.Y, from},            // 左上
		{r.Right(), r.Y, mid},       // 右上
		{r.X, r.Bottom(), mid},      // 左下
		{r.Right(), r.Bottom(), to}, // 右下
	}

	s.vertices = s.vertices[:0]
	for _, c := range corners {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(c.x),
			DstY:   float32(c.y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.c.R) / 255,
			ColorG: float32(c.c.G) / 255,
			ColorB: float32(c.c.B) / 255,
			ColorA: float32(c.c.A) / 255 * float32(opacity),
		})
	}
	s.indices = append(s.indices[:0], 0, 1, 2, 1, 3, 2)
	screen.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, nil)
}

// fillPolygon 填充凸多边形
func (s *RenderSystem) fillPolygon(screen *ebiten.Image, points [][2]float64, clr color.RGBA, opacity float64) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0][0]), float32(points[0][1]))
	for _, pt := range points[1:] {
		path.LineTo(float32(pt[0]), float32(pt[1]))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(clr.R) / 255
		s.vertices[i].ColorG = float32(clr.G) / 255
		s.vertices[i].ColorB = float32(clr.B) / 255
		s.vertices[i].ColorA = float32(clr.A) / 255 * float32(opacity)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, op)
}

// drawShape 绘制伪 3D 几何体
func (s *RenderSystem) drawShape(screen *ebiten.Image, p Placement, shape *components.ShapeComponent) {
	cx, cy := p.Rect.CenterX(), p.Rect.CenterY()
	r := shape.Radius * p.Scale
	highlight := utils.MixColor(shape.Color, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.35)
	shade := utils.MixColor(shape.Color, color.RGBA{A: 255}, 0.35)

	switch shape.Kind {
	case components.ShapeSphere:
		s.fillPolygon(screen, distortedCircle(cx, cy, r, shape.Distort, s.clock.Now()), shade, p.Opacity)
		s.fillPolygon(screen, distortedCircle(cx-r*0.08, cy-r*0.08, r*0.88, shape.Distort, s.clock.Now()), shape.Color, p.Opacity)
		vector.DrawFilledCircle(screen, float32(cx-r*0.35), float32(cy-r*0.35), float32(r*0.22),
			utils.WithAlpha(highlight, 0.6*p.Opacity), true)

	case components.ShapeTorus:
		// 圆环随 X 轴旋转压扁成椭圆
		squash := 0.45 + 0.35*math.Abs(math.Cos(p.RotateX*math.Pi/180))
		ring := ellipse(cx, cy, r, r*squash, 40)
		inner := ellipse(cx, cy, r*0.55, r*0.55*squash, 40)
		s.strokePolyline(screen, ring, float32(r*0.3), shape.Color, p.Opacity)
		s.strokePolyline(screen, inner, 1.5, highlight, p.Opacity*0.6)

	case components.ShapeBox:
		angle := p.RotateY * math.Pi / 180
		square := make([][2]float64, 4)
		for i := range square {
			a := angle + math.Pi/4 + float64(i)*math.Pi/2
			square[i] = [2]float64{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
		}
		s.fillPolygon(screen, square, shape.Color, p.Opacity)
		s.strokePolyline(screen, append(square, square[0]), 1.5, highlight, p.Opacity)

	case components.ShapeOctahedron:
		w := r * (0.55 + 0.45*math.Abs(math.Cos(p.RotateY*math.Pi/180)))
		top := [2]float64{cx, cy - r}
		bottom := [2]float64{cx, cy + r}
		left := [2]float64{cx - w, cy}
		right := [2]float64{cx + w, cy}
		s.fillPolygon(screen, [][2]float64{top, right, bottom, left}, shade, p.Opacity)
		s.fillPolygon(screen, [][2]float64{top, {cx + w*0.2, cy}, bottom, left}, shape.Color, p.Opacity)
		s.strokePolyline(screen, [][2]float64{top, right, bottom, left, top}, 1.5, highlight, p.Opacity)
	}
}

// strokePolyline 沿折线描边
func (s *RenderSystem) strokePolyline(screen *ebiten.Image, points [][2]float64, width float32, clr color.RGBA, opacity float64) {
	c := utils.WithAlpha(clr, opacity)
	for i := 0; i+1 < len(points); i++ {
		vector.StrokeLine(screen,
			float32(points[i][0]), float32(points[i][1]),
			float32(points[i+1][0]), float32(points[i+1][1]),
			width, c, true)
	}
}

// distortedCircle 轮廓随时间起伏的圆
func distortedCircle(cx, cy, r, distort, now float64) [][2]float64 {
	const segments = 48
	points := make([][2]float64, segments)
	for i := range points {
		a := float64(i) / segments * 2 * math.Pi
		rr := r * (1 + distort*0.06*math.Sin(a*5+now*2)*math.Cos(a*3-now*1.3))
		points[i] = [2]float64{cx + math.Cos(a)*rr, cy + math.Sin(a)*rr}
	}
	return points
}

// ellipse 闭合椭圆折线（首尾相同）
func ellipse(cx, cy, rx, ry float64, segments int) [][2]float64 {
	points := make([][2]float64, segments+1)
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		points[i] = [2]float64{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	return points
}

// drawStarField 绘制星空，星星坐标相对元素左上角
func (s *RenderSystem) drawStarField(screen *ebiten.Image, p Placement, field *components.StarFieldComponent) {
	for _, star := range field.Stars {
		x := p.Rect.X + star.X*p.Scale
		y := p.Rect.Y + star.Y*p.Scale
		alpha := utils.Clamp01(star.Brightness) * p.Opacity
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(star.Size),
			utils.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, alpha), true)
	}
}

// drawText 绘制（自动换行的）文本
func (s *RenderSystem) drawText(screen *ebiten.Image, p Placement, txt *components.TextComponent) {
	if txt.Text == "" {
		return
	}
	face := s.face(txt.Size*p.Scale, txt.Bold)
	spacing := txt.LineSpacing
	if spacing == 0 {
		spacing = 1.3
	}
	lineHeight := face.Size * spacing

	y := p.Rect.Y
	for _, line := range utils.WrapText(txt.Text, face, p.Rect.Width) {
		x := p.Rect.X
		if txt.Align == components.AlignCenter {
			x += (p.Rect.Width - text.Advance(line, face)) / 2
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(txt.Color)
		op.ColorScale.ScaleAlpha(float32(p.Opacity))
		text.Draw(screen, line, face, op)

		y += lineHeight
	}
}

// drawTextInput 绘制输入框内容：文本或占位符、光标、焦点边框
func (s *RenderSystem) drawTextInput(screen *ebiten.Image, p Placement, input *components.TextInputComponent) {
	face := s.face(16*p.Scale, false)
	x := p.Rect.X + input.PaddingLeft*p.Scale
	y := p.Rect.CenterY() - face.Size*0.65

	content, clr := input.Text, color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if content == "" && !input.IsFocused {
		content, clr = input.Placeholder, placeholderColor
	}
	if content != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(p.Opacity))
		text.Draw(screen, content, face, op)
	}

	if input.IsFocused {
		r := p.Rect
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			2, utils.WithAlpha(focusBorderColor, p.Opacity), true)
	}
	if input.IsFocused && input.CursorVisible {
		runes := []rune(input.Text)
		pos := input.CursorPosition
		if pos > len(runes) {
			pos = len(runes)
		}
		cursorX := x + text.Advance(string(runes[:pos]), face)
		vector.StrokeLine(screen, float32(cursorX), float32(y), float32(cursorX), float32(y+face.Size*1.2),
			1.5, utils.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, p.Opacity), true)
	}
}

// drawQRCode 绘制二维码（首次绘制时生成并缓存）
func (s *RenderSystem) drawQRCode(screen *ebiten.Image, id ecs.EntityID, p Placement, qr *components.QRCodeComponent) {
	img, ok := s.qrImages[id]
	if !ok {
		if s.qrFailed[id] {
			return
		}
		src, err := utils.NewQRImage(qr.Content, qr.Size, color.Black, color.White)
		if err != nil {
			log.Printf("[RenderSystem] 生成二维码失败 (实体 %d): %v", id, err)
			s.qrFailed[id] = true
			return
		}
		img = ebiten.NewImageFromImage(src)
		s.qrImages[id] = img
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Rect.Width/float64(b.Dx()), p.Rect.Height/float64(b.Dy()))
	op.GeoM.Translate(p.Rect.X, p.Rect.Y)
	op.ColorScale.ScaleAlpha(float32(p.Opacity))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// drawFollowers 绘制跟随光标（屏幕坐标，不随页面滚动）
func (s *RenderSystem) drawFollowers(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.SpringFollowerComponent](s.entityManager) {
		f, _ := ecs.GetComponent[*components.SpringFollowerComponent](s.entityManager, id)
		cx, cy := float32(f.X+f.Radius), float32(f.Y+f.Radius)
		vector.DrawFilledCircle(screen, cx, cy, float32(f.Radius), utils.WithAlpha(followerColor, 0.55), true)
		vector.StrokeCircle(screen, cx, cy, float32(f.Radius)+2, 1, utils.WithAlpha(followerColor, 0.9), true)
	}
}
