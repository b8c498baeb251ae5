package boule

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// LoadBodies reads user-defined reference ellipsoids from the conf.toml file
// in the directory named by the `BOULE_CONFIG` environment variable. Each
// body is one `[bodies.<name>]` table with the keys semimajor_axis,
// semimedium_axis, semiminor_axis, geocentric_grav_const, angular_velocity
// and the optional long_name and reference. Every definition goes through the
// same validation as New. An unset environment variable means no extra
// bodies, which is not an error.
func LoadBodies() ([]TriaxialEllipsoid, error) {
	confPath := os.Getenv("BOULE_CONFIG")
	if confPath == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s/conf.toml: %s", confPath, err)
	}
	names := make([]string, 0)
	for name := range v.GetStringMap("bodies") {
		names = append(names, name)
	}
	sort.Strings(names)
	bodies := make([]TriaxialEllipsoid, 0, len(names))
	for _, name := range names {
		key := "bodies." + name
		def := Def{
			Name:                strings.ToUpper(name),
			SemimajorAxis:       v.GetFloat64(key + ".semimajor_axis"),
			SemimediumAxis:      v.GetFloat64(key + ".semimedium_axis"),
			SemiminorAxis:       v.GetFloat64(key + ".semiminor_axis"),
			GeocentricGravConst: v.GetFloat64(key + ".geocentric_grav_const"),
			AngularVelocity:     v.GetFloat64(key + ".angular_velocity"),
			LongName:            v.GetString(key + ".long_name"),
			Reference:           v.GetString(key + ".reference"),
		}
		body, err := New(def)
		if err != nil {
			return nil, fmt.Errorf("body '%s': %w", name, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}
