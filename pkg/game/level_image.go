package game

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gonewx/tddown/pkg/types"
)

// 关卡图片调色板：每个像素对应一个格子，未列出的颜色都是空格子
// 只有完全不透明（alpha=255）的像素才会被识别
var levelPalette = map[color.NRGBA]types.TileType{
	{R: 0, G: 0, B: 0, A: 255}:       types.TileBorderTopLeft,
	{R: 30, G: 30, B: 30, A: 255}:    types.TileBorderTop,
	{R: 60, G: 60, B: 60, A: 255}:    types.TileBorderTopRight,
	{R: 90, G: 90, B: 90, A: 255}:    types.TileBorderRight,
	{R: 120, G: 120, B: 120, A: 255}: types.TileBorderBottomRight,
	{R: 150, G: 150, B: 150, A: 255}: types.TileBorderBottom,
	{R: 180, G: 180, B: 180, A: 255}: types.TileBorderBottomLeft,
	{R: 210, G: 210, B: 210, A: 255}: types.TileBorderLeft,
	{R: 213, G: 0, B: 0, A: 255}:     types.TileSpawn,
	{R: 113, G: 0, B: 0, A: 255}:     types.TileGoal,
	{R: 0, G: 200, B: 0, A: 255}:     types.TileTerrainUp,
	{R: 0, G: 155, B: 0, A: 255}:     types.TileTerrainCenter,
	{R: 0, G: 109, B: 0, A: 255}:     types.TileTerrainDown,
	{R: 0, G: 0, B: 200, A: 255}:     types.TileBuildUp,
	{R: 0, G: 0, B: 109, A: 255}:     types.TileBuildDown,
}

// TileTypeFromColor 将关卡图片中的像素颜色转换为格子类型
func TileTypeFromColor(c color.Color) types.TileType {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if kind, ok := levelPalette[n]; ok {
		return kind
	}
	return types.TileEmpty
}

// ColorForTileType 返回格子类型在关卡图片中的颜色（用于生成测试图片和导出）
func ColorForTileType(kind types.TileType) (color.NRGBA, bool) {
	for c, k := range levelPalette {
		if k == kind {
			return c, true
		}
	}
	return color.NRGBA{}, false
}

// DecodeLevelImage 解码 PNG 关卡图片，返回网格
func DecodeLevelImage(r io.Reader) (*Grid, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode level image: %w", err)
	}
	return GridFromImage(img), nil
}

// GridFromImage 按调色板把图片逐像素转换为网格
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	kinds := make([]types.TileType, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			kinds = append(kinds, TileTypeFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return NewGrid(width, kinds)
}
