/*
Package colorformats provides a closed catalog of color representations (integer and floating
point grayscale, linear and gamma encoded RGB, RGB with alpha, HSV, HSL and CIE XYZ/L*a*b* with
reference white tracking) together with conversions between any two of them and a compact
native byte encoding for each.

Every format is a small immutable value type. Direct conversions are methods such as
Rgb.ToHsv, conversions between arbitrary formats go through Convert which walks an explicit
graph of direct edges and hub formats.
*/
package colorformats

// Version is the release of this module, in major.minor.patch form.
const Version = "0.3.0"
