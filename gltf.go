package flag3d

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// NewGLTFDocument creates a glTF document holding the GridMesh as it currently is (so the current frame of the wave), as a single
// node with a single triangle-list mesh. If texture is non-nil, its backing image is embedded as a PNG and used as the base color
// texture of the mesh's material.
func NewGLTFDocument(mesh *GridMesh, texture *Texture) (*gltf.Document, error) {

	doc := gltf.NewDocument()

	grid := mesh.Grid
	vertCount := grid.VertexCount()

	positions := make([][3]float32, vertCount)
	uvs := make([][2]float32, vertCount)
	colors := make([][4]uint8, vertCount)

	pos := mesh.Positions()
	tex := mesh.TexCoords()
	clr := mesh.Colors()

	// glTF texture coordinates start at the top-left of the image, rather than the bottom-left.
	top := mesh.Height / mesh.PaddedHeight

	for i := 0; i < vertCount; i++ {
		positions[i] = [3]float32{pos[i*3], pos[i*3+1], pos[i*3+2]}
		uvs[i] = [2]float32{tex[i*3], top - tex[i*3+1]}
		colors[i] = [4]uint8{clr[i*4], clr[i*4+1], clr[i*4+2], clr[i*4+3]}
	}

	indices := make([]uint16, len(mesh.Indices()))
	copy(indices, mesh.Indices())

	primitive := &gltf.Primitive{
		Mode:    gltf.PrimitiveTriangles,
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, positions),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
			gltf.COLOR_0:    modeler.WriteColor(doc, colors),
		},
	}

	if texture != nil {

		imageData := &bytes.Buffer{}
		if err := png.Encode(imageData, texture.Source()); err != nil {
			return nil, fmt.Errorf("flag3d: encode glTF texture: %w", err)
		}

		imageIndex, err := modeler.WriteImage(doc, texture.Name, "image/png", imageData)
		if err != nil {
			return nil, fmt.Errorf("flag3d: write glTF texture: %w", err)
		}

		doc.Samplers = append(doc.Samplers, &gltf.Sampler{
			MagFilter: gltf.MagLinear,
			MinFilter: gltf.MinLinear,
			WrapS:     gltf.WrapClampToEdge,
			WrapT:     gltf.WrapClampToEdge,
		})

		doc.Textures = append(doc.Textures, &gltf.Texture{
			Sampler: gltf.Index(len(doc.Samplers) - 1),
			Source:  gltf.Index(imageIndex),
		})

		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:        texture.Name,
			DoubleSided: true,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorTexture: &gltf.TextureInfo{Index: len(doc.Textures) - 1},
				MetallicFactor:   gltf.Float(0),
			},
		})

		primitive.Material = gltf.Index(len(doc.Materials) - 1)

	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       mesh.Name,
		Primitives: []*gltf.Primitive{primitive},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: mesh.Name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc, nil

}

// WriteGLTF writes the GridMesh (and Texture, if non-nil) to the writer provided as a binary glTF (.glb) file.
func WriteGLTF(w io.Writer, mesh *GridMesh, texture *Texture) error {

	doc, err := NewGLTFDocument(mesh, texture)
	if err != nil {
		return err
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("flag3d: encode glTF: %w", err)
	}

	return nil

}

// ExportGLTF saves the GridMesh (and Texture, if non-nil) to a binary glTF (.glb) file at the path provided.
func ExportGLTF(path string, mesh *GridMesh, texture *Texture) error {

	doc, err := NewGLTFDocument(mesh, texture)
	if err != nil {
		return err
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("flag3d: save glTF %s: %w", path, err)
	}

	return nil

}
